package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"eventfinder/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
// code is a short machine-readable value such as "INVALID_BODY" or "INTERNAL_ERROR".
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// writeValidationError reports which fields failed which rule.
func writeValidationError(c *fiber.Ctx, err error) error {
	var fields []fieldError
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_ERROR",
			Message: "request validation failed",
			Fields:  fields,
		},
	})
}

// writeText answers with a fixed plain-text message.
func writeText(c *fiber.Ctx, status int, text string) error {
	return c.Status(status).SendString(text)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
