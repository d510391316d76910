// Package mail is the outbound notification channel.
package mail

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Message is one rendered, recipient-addressed email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message. The dispatcher only cares about accept/reject;
// retry and backoff belong to the caller's next scheduled run.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ResendSender sends through the Resend API with a fixed From identity.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	return err
}
