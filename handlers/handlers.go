// Package handlers translates HTTP requests into store calls and JSON or
// HTML responses.
package handlers

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"

	"moodtunes/models"
)

// AccountStore is the account persistence contract the handlers depend on.
type AccountStore interface {
	CreateUser(ctx context.Context, username, email, password string) (int64, error)
	VerifyUser(ctx context.Context, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// CatalogStore samples songs for a mood label.
type CatalogStore interface {
	SongsByMood(ctx context.Context, mood string) ([]models.Song, error)
}

// Handler carries the injected stores, session store and logger.
type Handler struct {
	accounts AccountStore
	catalog  CatalogStore
	sessions *session.Store
	validate *validator.Validate
	log      zerolog.Logger
}

func New(accounts AccountStore, catalog CatalogStore, sessions *session.Store, log zerolog.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		catalog:  catalog,
		sessions: sessions,
		validate: validator.New(),
		log:      log,
	}
}

// Health is a liveness probe.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ErrorHandler converts anything escaping a handler into a structured
// JSON failure; a request fault must never take the process down.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
}

func result(success bool, message string) fiber.Map {
	return fiber.Map{"success": success, "message": message}
}
