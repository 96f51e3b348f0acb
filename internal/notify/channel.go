// Package notify provides the reminder delivery channel consumed by the
// scheduler. Delivery is fire-and-forget: an error means the reminder was
// not handed off and the caller must not mark it as sent.
package notify

import (
	"context"

	"contaspro-backend/internal/logger"
)

// Channel delivers a reminder to the user's device or inbox.
type Channel interface {
	Deliver(ctx context.Context, title, body string) error
}

// LogChannel writes reminders to the application log. Used as the default
// channel and in environments without email or push credentials.
type LogChannel struct{}

func NewLogChannel() *LogChannel {
	return &LogChannel{}
}

func (c *LogChannel) Deliver(ctx context.Context, title, body string) error {
	logger.Info("Reminder", "title", title, "body", body)
	return nil
}
