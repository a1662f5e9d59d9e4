package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

// Email is a message ready for delivery.
type Email struct {
	From    string
	To      []string
	Cc      []string
	Bcc     []string
	ReplyTo string
	Message Message
}

// Sender delivers emails.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// ResendSender delivers through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// ResendOption configures a ResendSender.
type ResendOption func(c *resend.Client)

// WithBaseURL points the client at another API endpoint.
func WithBaseURL(u *url.URL) ResendOption {
	return func(c *resend.Client) {
		c.BaseURL = u
	}
}

// NewResendSender creates the Resend transport. A nil httpClient uses
// http.DefaultClient.
func NewResendSender(apiKey string, httpClient *http.Client, opts ...ResendOption) (*ResendSender, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyEmpty
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := resend.NewCustomClient(httpClient, apiKey)
	for _, opt := range opts {
		opt(client)
	}

	return &ResendSender{client: client}, nil
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, email Email) error {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Cc:      email.Cc,
		Bcc:     email.Bcc,
		ReplyTo: email.ReplyTo,
		Subject: email.Message.Subject,
		Html:    email.Message.HTML,
		Text:    email.Message.Text,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	log.Debug().Str("id", sent.Id).Strs("to", email.To).Msg("email sent")

	return nil
}

// LogSender only logs emails. Used in dev mode.
type LogSender struct{}

// Send implements Sender.
func (LogSender) Send(_ context.Context, email Email) error {
	log.Info().
		Str("from", email.From).
		Strs("to", email.To).
		Strs("cc", email.Cc).
		Str("replyTo", email.ReplyTo).
		Str("subject", email.Message.Subject).
		Msg(email.Message.Text)

	return nil
}
