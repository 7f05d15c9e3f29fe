package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := NewNoOpNotifier(log)
	err := n.Send(context.Background(), "C123", "Monitoring activated for Ergo Chair.")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "notification discarded")
	assert.Contains(t, buf.String(), "C123")
}
