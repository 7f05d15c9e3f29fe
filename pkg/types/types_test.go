package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestChangeEvent_Notifiable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind EventKind
		want bool
	}{
		{EventActivation, true},
		{EventPriceChanged, true},
		{EventFirstObservation, false},
		{EventNoChange, false},
		{EventFetchFailed, false},
	}

	for _, tt := range tests {
		ev := &ChangeEvent{Kind: tt.kind, NewPrice: fptr(100)}
		assert.Equal(t, tt.want, ev.Notifiable(), "kind %s", tt.kind)
	}
}
