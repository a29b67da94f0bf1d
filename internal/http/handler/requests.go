package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// contactRequest is the body of POST /contact.
type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *contactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// sendEmailRequest is the body of POST /contact/send-email.
// Older clients post the address as "to"; it is used when "recipient" is empty.
type sendEmailRequest struct {
	Recipient string `json:"recipient"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (r sendEmailRequest) recipient() string {
	if rcpt := strings.TrimSpace(r.Recipient); rcpt != "" {
		return rcpt
	}
	return strings.TrimSpace(r.To)
}

// favoriteRequest is the body of POST /users/:userId/favorites.
type favoriteRequest struct {
	EventID string `json:"event_id" validate:"required,max=64"`
}
