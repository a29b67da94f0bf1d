package service

import (
	"context"

	"eventfinder/internal/mail"
)

// EmailInput is an outbound email request. The sender is never caller-supplied.
type EmailInput struct {
	Recipient string
	Subject   string
	Body      string
}

// MailService relays one-shot notification emails.
type MailService interface {
	// SendEmail attempts a single delivery. Failures wrap mail.ErrDelivery and are never retried.
	SendEmail(ctx context.Context, in EmailInput) error
}

type mailService struct {
	mailer mail.Mailer
}

func NewMailService(mailer mail.Mailer) MailService {
	return &mailService{mailer: mailer}
}

func (s *mailService) SendEmail(ctx context.Context, in EmailInput) error {
	return s.mailer.Deliver(ctx, in.Recipient, in.Subject, in.Body)
}
