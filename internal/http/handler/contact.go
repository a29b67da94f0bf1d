package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"eventfinder/internal/service"
)

const (
	msgContactSaved     = "Thank you for reaching out! We will get back to you soon."
	msgContactSaveError = "Failed to save your message."
	msgContactListError = "Failed to load messages."
	msgEmailSent        = "Email sent successfully!"
	msgEmailFailed      = "Failed to send email."
)

// SubmitContact stores a contact form message.
//
// @Summary     Submit a contact message
// @Tags        contact
// @Accept      json
// @Produce     plain
// @Param       body body contactRequest true "Contact message"
// @Success     200 {string} string
// @Failure     400 {object} errorPayload
// @Failure     500 {string} string
// @Router      /contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req contactRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		req.normalize()
		if err := validate.Struct(&req); err != nil {
			return writeValidationError(c, err)
		}

		_, err := svc.Submit(c.UserContext(), service.ContactInput{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("contact submit failed")
			return writeText(c, fiber.StatusInternalServerError, msgContactSaveError)
		}
		return writeText(c, fiber.StatusOK, msgContactSaved)
	}
}

// ListContacts returns every stored contact message.
//
// @Summary     List contact messages
// @Tags        contact
// @Produce     json
// @Success     200 {array}  model.Contact
// @Failure     500 {string} string
// @Router      /contact [get]
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("contact list failed")
			return writeText(c, fiber.StatusInternalServerError, msgContactListError)
		}
		return c.JSON(items)
	}
}

// SendEmail relays a single email from the configured sender.
//
// @Summary     Send an email
// @Tags        contact
// @Accept      json
// @Produce     plain
// @Param       body body sendEmailRequest true "Email"
// @Success     200 {string} string
// @Failure     400 {object} errorPayload
// @Failure     500 {string} string
// @Router      /contact/send-email [post]
func SendEmail(svc service.MailService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sendEmailRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}

		err := svc.SendEmail(c.UserContext(), service.EmailInput{
			Recipient: req.recipient(),
			Subject:   req.Subject,
			Body:      req.Message,
		})
		if err != nil {
			return writeText(c, fiber.StatusInternalServerError, msgEmailFailed)
		}
		return writeText(c, fiber.StatusOK, msgEmailSent)
	}
}
