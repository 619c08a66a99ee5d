package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"
)

// Guard gates protected routes on an authenticated session.
type Guard struct {
	sessions *session.Store
	log      zerolog.Logger
}

func NewGuard(sessions *session.Store, log zerolog.Logger) *Guard {
	return &Guard{sessions: sessions, log: log}
}

// API rejects unauthenticated requests with a 401 JSON body. On success
// the session identity is copied into locals for the handler.
func (g *Guard) API(c *fiber.Ctx) error {
	sess, err := g.sessions.Get(c)
	if err != nil {
		g.log.Error().Err(err).Msg("session store unavailable")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Session could not be loaded"})
	}

	userID := sess.Get("user_id")
	if userID == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	c.Locals("user_id", userID)
	c.Locals("username", sess.Get("username"))
	c.Locals("email", sess.Get("email"))
	return c.Next()
}

// Page sends unauthenticated browsers to the sign-in page instead of
// returning an error body.
func (g *Guard) Page(c *fiber.Ctx) error {
	sess, err := g.sessions.Get(c)
	if err != nil || sess.Get("user_id") == nil {
		return c.Redirect("/signin")
	}

	c.Locals("user_id", sess.Get("user_id"))
	c.Locals("username", sess.Get("username"))
	c.Locals("email", sess.Get("email"))
	return c.Next()
}
