package handlers

import "github.com/gofiber/fiber/v2"

// Index sends authenticated users straight to the dashboard, everyone
// else to the landing page.
func (h *Handler) Index(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil && sess.Get("user_id") != nil {
		return c.Redirect("/dashboard")
	}
	return c.Render("landing", fiber.Map{})
}

func (h *Handler) Signup(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{})
}

func (h *Handler) Signin(c *fiber.Ctx) error {
	return c.Render("signin", fiber.Map{})
}

func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	return c.Render("forgot_password", fiber.Map{})
}

// Dashboard greets the signed-in user by the name stored in the session.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	if username == "" {
		username = "User"
	}
	return c.Render("dashboard", fiber.Map{"Username": username})
}

func (h *Handler) Quiz(c *fiber.Ctx) error {
	return c.Render("quiz", fiber.Map{})
}

func (h *Handler) Images(c *fiber.Ctx) error {
	return c.Render("images", fiber.Map{})
}

func (h *Handler) Puzzle(c *fiber.Ctx) error {
	return c.Render("puzzle", fiber.Map{})
}
