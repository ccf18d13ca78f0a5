package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	"portfolio/internal/config"
	"portfolio/internal/logging"

	gomail "github.com/wneessen/go-mail"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// implicitTLSPort is the submissions port that speaks TLS from the first byte
const implicitTLSPort = 465

// SMTPRelay sends messages through an SMTP server. Every Send opens its own
// session, so a single relay can serve concurrent requests.
type SMTPRelay struct {
	host   string
	port   int
	opts   []gomail.Option
	tracer trace.Tracer
}

// NewSMTPRelay builds a relay from cfg. It does not touch the network.
func NewSMTPRelay(cfg config.MailConfig) (*SMTPRelay, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(cfg.Timeout),
		gomail.WithTLSConfig(&tls.Config{
			ServerName:         cfg.Host,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			MinVersion:         tls.VersionTLS12,
		}),
	}

	if cfg.Port == implicitTLSPort {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	if cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	relay := &SMTPRelay{
		host:   cfg.Host,
		port:   cfg.Port,
		opts:   opts,
		tracer: otel.Tracer("portfolio/internal/mail"),
	}

	// Surface option errors at startup rather than on the first submission
	if _, err := relay.newClient(); err != nil {
		return nil, err
	}

	return relay, nil
}

func (r *SMTPRelay) newClient() (*gomail.Client, error) {
	client, err := gomail.NewClient(r.host, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return client, nil
}

// Verify opens and closes one authenticated session
func (r *SMTPRelay) Verify(ctx context.Context) error {
	client, err := r.newClient()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", r.host, r.port, err)
	}
	return client.Close()
}

// Send delivers msg and returns its Message-ID header value
func (r *SMTPRelay) Send(ctx context.Context, msg *Message) (string, error) {
	ctx, span := r.tracer.Start(ctx, "smtp.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("smtp.host", r.host),
			attribute.Int("smtp.port", r.port),
		),
	)
	defer span.End()

	messageID, err := r.send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(attribute.String("smtp.message_id", messageID))
	return messageID, nil
}

func (r *SMTPRelay) send(ctx context.Context, msg *Message) (string, error) {
	m, err := buildMsg(msg)
	if err != nil {
		return "", err
	}

	client, err := r.newClient()
	if err != nil {
		return "", err
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", err
	}

	return m.GetMessageID(), nil
}

func buildMsg(msg *Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()

	if err := m.From(msg.From.String()); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To.String()); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	// The visitor address is free text; an unparsable one only costs the
	// Reply-To header, the body still carries it
	if msg.ReplyTo.Email != "" {
		if err := m.ReplyTo(msg.ReplyTo.String()); err != nil {
			logging.GetLogger().Warn("Dropping Reply-To header for %q: %v", msg.ReplyTo.Email, err)
		}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	m.SetDate()
	m.SetMessageID()

	return m, nil
}
