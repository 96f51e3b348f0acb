package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailChannel delivers reminders by email through SendGrid.
type EmailChannel struct {
	apiKey    string
	fromEmail string
	fromName  string
	toEmail   string
	toName    string
}

func NewEmailChannel(apiKey, fromEmail, fromName, toEmail, toName string) *EmailChannel {
	return &EmailChannel{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
		toName:    toName,
	}
}

func (c *EmailChannel) Deliver(ctx context.Context, title, body string) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	recipient := mail.NewEmail(c.toName, c.toEmail)

	message := mail.NewSingleEmail(from, title, recipient, body, "")

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
