package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"contaspro-backend/internal/logger"
)

// PushChannel delivers reminders as push notifications through Firebase
// Cloud Messaging, mirroring the in-browser notifications of the web client.
type PushChannel struct {
	client *messaging.Client
	tokens []string
}

// NewPushChannel initializes the FCM client from a service-account
// credentials file and a set of registered device tokens.
func NewPushChannel(ctx context.Context, credentialsFile string, tokens []string) (*PushChannel, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fcm client: %w", err)
	}
	return &PushChannel{client: client, tokens: tokens}, nil
}

func (c *PushChannel) Deliver(ctx context.Context, title, body string) error {
	if len(c.tokens) == 0 {
		return fmt.Errorf("no device tokens registered")
	}

	var lastErr error
	delivered := 0
	for _, token := range c.tokens {
		_, err := c.client.Send(ctx, &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
		})
		if err != nil {
			logger.Warn("Failed to push reminder to device", "error", err)
			lastErr = err
			continue
		}
		delivered++
	}

	if delivered == 0 {
		return fmt.Errorf("push delivery failed for all devices: %w", lastErr)
	}
	return nil
}
