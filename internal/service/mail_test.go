package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventfinder/internal/mail"
	mailMocks "eventfinder/internal/mail/mocks"
)

func TestMailService_SendEmail(t *testing.T) {
	ctx := context.Background()
	in := EmailInput{Recipient: "guest@example.com", Subject: "Your RSVP", Body: "See you Friday."}

	t.Run("passes recipient, subject and body through unchanged", func(t *testing.T) {
		mMailer := new(mailMocks.MockMailer)
		mMailer.On("Deliver", ctx, "guest@example.com", "Your RSVP", "See you Friday.").Return(nil).Once()

		err := NewMailService(mMailer).SendEmail(ctx, in)
		assert.NoError(t, err)
		mMailer.AssertExpectations(t)
	})

	t.Run("delivery failure", func(t *testing.T) {
		mMailer := new(mailMocks.MockMailer)
		deliveryErr := fmt.Errorf("%w: %w", mail.ErrDelivery, errors.New("dial tcp: i/o timeout"))
		mMailer.On("Deliver", ctx, in.Recipient, in.Subject, in.Body).Return(deliveryErr).Once()

		err := NewMailService(mMailer).SendEmail(ctx, in)
		assert.ErrorIs(t, err, mail.ErrDelivery)
		mMailer.AssertNumberOfCalls(t, "Deliver", 1)
	})
}
