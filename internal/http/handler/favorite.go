package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"eventfinder/internal/service"
)

// AddFavorite links the user in the path to an event.
//
// @Summary     Favorite an event
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       userId path string          true "User ID"
// @Param       body   body favoriteRequest true "Event"
// @Success     201 {object} model.FavoriteEvent
// @Failure     400 {object} errorPayload
// @Failure     500 {object} errorPayload
// @Router      /users/{userId}/favorites [post]
func AddFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req favoriteRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		if err := validate.Struct(&req); err != nil {
			return writeValidationError(c, err)
		}

		fav, err := svc.Add(c.UserContext(), c.Params("userId"), req.EventID)
		if err != nil {
			return favoriteError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fav)
	}
}

// ListFavorites returns the favorites of the user in the path.
//
// @Summary     List a user's favorite events
// @Tags        favorites
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array}  model.FavoriteEvent
// @Failure     500 {object} errorPayload
// @Router      /users/{userId}/favorites [get]
func ListFavorites(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListByUser(c.UserContext(), c.Params("userId"))
		if err != nil {
			return favoriteError(c, err)
		}
		return c.JSON(items)
	}
}

func favoriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "user id is required")
	case errors.Is(err, service.ErrEventIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_EVENT_ID", "event id is required")
	default:
		zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("favorites request failed")
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
