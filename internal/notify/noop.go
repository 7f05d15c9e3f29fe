package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded messages. It is
// used when Slack (or another notification backend) is not configured.
//
// NoOpNotifier acknowledges everything, so state still advances; it is a
// deliberate "monitor without alerting" mode, not a dry run.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards messages with a log line.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Send logs and discards a message.
func (n *NoOpNotifier) Send(_ context.Context, channelID, text string) error {
	n.log.Debug("notification discarded (no backend configured)",
		"channel", channelID,
		"text", text,
	)
	return nil
}
