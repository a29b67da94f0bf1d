package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"eventfinder/internal/config"
	"eventfinder/internal/model"
)

// SMTPSender delivers through an SMTP relay. A connection is dialed per message.
type SMTPSender struct {
	client *gomail.Client
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender configures the relay client without connecting.
func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTLSPolicy(tlsPolicy(cfg.SMTPTLS)),
		gomail.WithTimeout(time.Duration(cfg.TimeoutSec) * time.Second),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUsername),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPSender{client: client}, nil
}

// Send dials the relay and submits msg.
func (s *SMTPSender) Send(ctx context.Context, msg model.EmailMessage) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMsg(msg model.EmailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}

func tlsPolicy(name string) gomail.TLSPolicy {
	switch name {
	case "opportunistic":
		return gomail.TLSOpportunistic
	case "none":
		return gomail.NoTLS
	default:
		return gomail.TLSMandatory
	}
}
