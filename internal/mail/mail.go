// Package mail delivers outbound notification emails.
//
// A Gateway owns the process-wide sender identity and hands fully formed messages to a
// provider-specific Sender. Every provider fault is collapsed into ErrDelivery; there are
// no retries, so each call is an at-most-once send.
package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eventfinder/internal/config"
	"eventfinder/internal/metrics"
	"eventfinder/internal/model"
)

// ErrDelivery is returned for any failure to hand a message to the provider.
var ErrDelivery = errors.New("email delivery failed")

const tracerName = "eventfinder/internal/mail"

// Sender is a provider transport. Implementations attempt one synchronous delivery.
type Sender interface {
	Send(ctx context.Context, msg model.EmailMessage) error
}

// Mailer is the service-facing side of the gateway.
type Mailer interface {
	Deliver(ctx context.Context, to, subject, body string) error
}

// Gateway stamps the configured sender on every message and delegates to a Sender.
type Gateway struct {
	from     string
	provider string
	sender   Sender
	archive  *Archive
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	validate *validator.Validate
	log      zerolog.Logger
}

var _ Mailer = (*Gateway)(nil)

// Option customizes a Gateway.
type Option func(*Gateway)

// WithArchive stores a copy of every delivered message.
func WithArchive(a *Archive) Option {
	return func(g *Gateway) { g.archive = a }
}

// WithMetrics records delivery outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

// WithLogger sets the fallback logger used when the request context carries none.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Gateway) { g.log = log }
}

// NewGateway builds a gateway around sender. cfg.From and cfg.FromName form the sender identity.
func NewGateway(cfg config.MailConfig, sender Sender, opts ...Option) *Gateway {
	from := (&netmail.Address{Name: cfg.FromName, Address: cfg.From}).String()
	if cfg.FromName == "" {
		from = cfg.From
	}

	g := &Gateway{
		from:     from,
		provider: cfg.Provider,
		sender:   sender,
		tracer:   otel.Tracer(tracerName),
		validate: validator.New(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// From returns the sender identity stamped on outgoing messages.
func (g *Gateway) From() string { return g.from }

// Deliver sends exactly the given recipient, subject and body from the configured sender.
func (g *Gateway) Deliver(ctx context.Context, to, subject, body string) error {
	ctx, span := g.tracer.Start(ctx, "mail.Send", trace.WithAttributes(
		attribute.String("mail.provider", g.provider),
	))
	defer span.End()

	log := g.logger(ctx)
	msg := model.EmailMessage{From: g.from, To: to, Subject: subject, Body: body}

	err := g.validate.Var(to, "required,email")
	if err != nil {
		err = fmt.Errorf("invalid recipient %q: %w", to, err)
	} else {
		err = g.sender.Send(ctx, msg)
	}

	g.metrics.MailDelivery(g.provider, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		log.Error().Err(err).Str("provider", g.provider).Msg("email delivery failed")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	log.Info().Str("provider", g.provider).Str("subject", subject).Msg("email delivered")

	if g.archive != nil {
		if err := g.archive.Store(ctx, g.provider, msg); err != nil {
			log.Warn().Err(err).Msg("failed to archive delivered email")
		}
	}
	return nil
}

func (g *Gateway) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &g.log
}

// NewSender returns the transport selected by cfg.Provider.
func NewSender(cfg config.MailConfig, log zerolog.Logger) (Sender, error) {
	switch cfg.Provider {
	case ProviderSMTP:
		return NewSMTPSender(cfg)
	case ProviderResend:
		return NewResendSender(cfg)
	case ProviderLog, "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

// Provider names accepted in MailConfig.Provider.
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
	ProviderLog    = "log"
)
