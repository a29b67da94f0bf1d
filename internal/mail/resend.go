package mail

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"eventfinder/internal/config"
	"eventfinder/internal/model"
)

// ResendSender delivers through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
}

var _ Sender = (*ResendSender)(nil)

// NewResendSender builds a Resend client whose HTTP calls are traced.
func NewResendSender(cfg config.MailConfig) (*ResendSender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
	}
	return &ResendSender{client: resend.NewCustomClient(httpClient, cfg.ResendAPIKey)}, nil
}

// Send submits msg as a plain-text email.
func (s *ResendSender) Send(ctx context.Context, msg model.EmailMessage) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
