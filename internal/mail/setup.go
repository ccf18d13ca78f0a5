package mail

import (
	"context"

	"portfolio/internal/config"
	"portfolio/internal/logging"
)

// Setup selects the relay mode for the lifetime of the process.
//
// A missing account or credential, an invalid client configuration or a
// failed connection check all fall back to no-mail mode; none of them stop
// startup.
func Setup(ctx context.Context, cfg config.MailConfig, logger *logging.Logger) *Transport {
	if !cfg.HasCredential() {
		logger.Warn("Email not configured - EMAIL_PASS environment variable not set")
		logger.Warn("Emails will not be sent, but the server will still accept requests")
		return Disabled()
	}

	if !cfg.HasAccount() {
		logger.Warn("Email not configured - EMAIL_USER environment variable not set")
		logger.Warn("Emails will not be sent, but the server will still accept requests")
		return Disabled()
	}

	relay, err := NewSMTPRelay(cfg)
	if err != nil {
		logger.Error("SMTP setup error: %v", err)
		return Disabled()
	}

	verifyCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := relay.Verify(verifyCtx); err != nil {
		logger.Error("SMTP connection failed: %v", err)
		return Disabled()
	}

	logger.Info("SMTP connection verified - ready to send emails via %s:%d", cfg.Host, cfg.Port)
	return NewTransport(relay, cfg.User)
}
