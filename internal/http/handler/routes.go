package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"eventfinder/internal/database"
	"eventfinder/internal/service"
)

const healthTimeout = 2 * time.Second

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db database.Pinger, contactSvc service.ContactService, favoriteSvc service.FavoriteService, mailSvc service.MailService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/contact", SubmitContact(contactSvc))
	app.Get("/contact", ListContacts(contactSvc))
	app.Post("/contact/send-email", SendEmail(mailSvc))

	app.Post("/users/:userId/favorites", AddFavorite(favoriteSvc))
	app.Get("/users/:userId/favorites", ListFavorites(favoriteSvc))
}

// HealthCheck reports readiness; it fails when the database does not answer a ping.
//
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} errorPayload
// @Router   /health [get]
func HealthCheck(db database.Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
