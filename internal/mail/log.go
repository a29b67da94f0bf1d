package mail

import (
	"context"

	"github.com/rs/zerolog"

	"eventfinder/internal/model"
)

// LogSender writes messages to the log instead of delivering them. Used in development.
type LogSender struct {
	log zerolog.Logger
}

var _ Sender = (*LogSender)(nil)

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log.With().Str("component", "mail").Logger()}
}

func (s *LogSender) Send(_ context.Context, msg model.EmailMessage) error {
	s.log.Info().
		Str("from", msg.From).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("email not delivered: log provider")
	return nil
}
