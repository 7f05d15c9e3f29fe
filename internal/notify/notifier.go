// Package notify defines the notification interface and implementations
// for alert delivery.
package notify

import (
	"context"
)

// Notifier delivers a composed message to a channel. A nil return means
// the message was acknowledged by the transport; callers must not commit
// state for a change whose notification was not delivered.
type Notifier interface {
	Send(ctx context.Context, channelID, text string) error
}
