package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

var sendCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "lensfolio_contact_sends_total",
		Help: "Contact emails by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// Config of the send pipeline.
type Config struct {
	From             string
	To               []string
	Cc               []string
	SendConfirmation bool
	Timeout          time.Duration
}

// Service validates submissions and sends the notification, followed by an
// optional confirmation to the submitter.
type Service struct {
	cfg      Config
	sender   Sender
	renderer *Renderer
}

// NewService creates the pipeline.
func NewService(cfg Config, sender Sender, renderer *Renderer) (*Service, error) {
	if len(cfg.To) == 0 {
		return nil, ErrNoRecipients
	}

	return &Service{cfg: cfg, sender: sender, renderer: renderer}, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.cfg.Timeout)
}

// Submit validates form and delivers it. Validation errors are returned
// unwrapped, delivery errors wrap ErrSendFailed. A failed confirmation is
// only logged.
func (s *Service) Submit(ctx context.Context, form Form) error {
	if err := form.Validate(); err != nil {
		sendCounter.WithLabelValues("notification", "invalid").Inc()
		return err
	}

	msg, err := s.renderer.RenderNotification(form)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	sendCtx, cancel := s.withTimeout(ctx)
	err = s.sender.Send(sendCtx, Email{
		From:    s.cfg.From,
		To:      s.cfg.To,
		Cc:      s.cfg.Cc,
		ReplyTo: form.Email,
		Message: msg,
	})

	cancel()

	if err != nil {
		sendCounter.WithLabelValues("notification", "error").Inc()
		log.Error().Err(err).Str("replyTo", form.Email).Msg("failed to send contact notification")

		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	sendCounter.WithLabelValues("notification", "ok").Inc()

	if s.cfg.SendConfirmation {
		s.confirm(ctx, form)
	}

	return nil
}

func (s *Service) confirm(ctx context.Context, form Form) {
	msg, err := s.renderer.RenderConfirmation(form)
	if err != nil {
		log.Error().Err(err).Msg("failed to render contact confirmation")
		return
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err = s.sender.Send(ctx, Email{
		From:    s.cfg.From,
		To:      []string{form.Email},
		Bcc:     s.cfg.To,
		Message: msg,
	})
	if err != nil {
		sendCounter.WithLabelValues("confirmation", "error").Inc()
		log.Warn().Err(err).Str("to", form.Email).Msg("failed to send contact confirmation")

		return
	}

	sendCounter.WithLabelValues("confirmation", "ok").Inc()
}
