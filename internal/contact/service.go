package contact

import (
	"context"
	"fmt"

	"portfolio/internal/api/sanitization"
	"portfolio/internal/logging"
	"portfolio/internal/mail"
)

// Preview is the echo returned when no mail is sent
type Preview struct {
	Name    string
	Email   string
	Message string
}

// Result describes an accepted submission
type Result struct {
	Mode mail.Mode

	// MessageID is set in SMTP mode
	MessageID string

	// Preview is set in no-mail mode
	Preview *Preview
}

// Service accepts contact submissions and relays them according to the
// transport mode chosen at startup
type Service struct {
	transport *mail.Transport
	logger    *logging.Logger
}

func NewService(transport *mail.Transport, logger *logging.Logger) *Service {
	if transport == nil {
		transport = mail.Disabled()
	}
	return &Service{
		transport: transport,
		logger:    logger,
	}
}

// Submit validates s and, in SMTP mode, relays it exactly once.
// Returns ErrValidation-wrapped errors for bad input and *DeliveryError
// when the relay fails.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	sub = Normalize(sub)

	s.logger.Info("Contact form submission from %s (%s)", sub.Name, sub.Email)
	s.logger.Debug("Message: %s...", sanitization.Truncate(sub.Message, 50))

	if err := Validate(sub); err != nil {
		s.logger.Warn("Contact form rejected: %v", err)
		return nil, err
	}

	switch s.transport.Mode() {
	case mail.ModeDisabled:
		s.logger.Warn("Email not configured - returning test response")
		return &Result{
			Mode: mail.ModeDisabled,
			Preview: &Preview{
				Name:    sub.Name,
				Email:   sub.Email,
				Message: sanitization.Truncate(sub.Message, PreviewLength),
			},
		}, nil

	case mail.ModeSMTP:
		msg := ComposeEmail(s.transport.Account(), sub)
		messageID, err := s.transport.Relay().Send(ctx, msg)
		if err != nil {
			s.logger.Error("Failed to send contact email: %v", err)
			return nil, &DeliveryError{Err: err}
		}

		s.logger.Info("Contact email sent, message ID %s", messageID)
		return &Result{Mode: mail.ModeSMTP, MessageID: messageID}, nil

	default:
		return nil, fmt.Errorf("unsupported mail mode %s", s.transport.Mode())
	}
}
