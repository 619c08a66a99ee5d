package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"moodtunes/store"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type resetRequest struct {
	Email string `json:"email"`
}

// Register creates a new account. Validation failures and duplicate
// emails come back as success:false with a user-facing message; the
// password is never echoed anywhere.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(result(false, "An error occurred. Please try again."))
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(req); err != nil {
		return c.JSON(result(false, registerMessage(err)))
	}

	_, err := h.accounts.CreateUser(c.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return c.JSON(result(false, "Email already registered"))
	}
	if err != nil {
		h.log.Error().Err(err).Msg("create user failed")
		return c.JSON(result(false, "Registration failed. Please try again."))
	}

	return c.JSON(result(true, "Registration successful! Please sign in."))
}

// registerMessage maps validator output to the user-facing strings.
// Missing fields take precedence over the length check.
func registerMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				return "All fields are required"
			}
		}
		for _, fe := range fieldErrs {
			if fe.Field() == "Password" && fe.Tag() == "min" {
				return "Password must be at least 6 characters"
			}
		}
	}
	return "All fields are required"
}

// Login verifies credentials and, on success, stores the user identity in
// a fresh session. The failure message never distinguishes an unknown
// email from a wrong password.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(result(false, "An error occurred. Please try again."))
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(req); err != nil {
		return c.JSON(result(false, "Email and password are required"))
	}

	user, err := h.accounts.VerifyUser(c.Context(), req.Email, req.Password)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(result(false, "Invalid email or password"))
	}
	if err != nil {
		h.log.Error().Err(err).Msg("verify user failed")
		return c.JSON(result(false, "An error occurred. Please try again."))
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		h.log.Error().Err(err).Msg("session create failed")
		return c.Status(fiber.StatusInternalServerError).JSON(result(false, "An error occurred. Please try again."))
	}
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("email", user.Email)
	if err := sess.Save(); err != nil {
		h.log.Error().Err(err).Msg("session save failed")
		return c.Status(fiber.StatusInternalServerError).JSON(result(false, "An error occurred. Please try again."))
	}

	return c.JSON(result(true, "Login successful!"))
}

// Logout destroys the session unconditionally and sends the browser home.
func (h *Handler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			h.log.Error().Err(err).Msg("session destroy failed")
		}
	}
	return c.Redirect("/")
}

// ResetPassword only checks that the email exists. No reset token is
// issued and no email is sent.
func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	var req resetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(result(false, "An error occurred. Please try again."))
	}
	req.Email = strings.TrimSpace(req.Email)

	if req.Email == "" {
		return c.JSON(result(false, "Email is required"))
	}

	_, err := h.accounts.GetUserByEmail(c.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(result(false, "Email not found in our system"))
	}
	if err != nil {
		h.log.Error().Err(err).Msg("reset lookup failed")
		return c.JSON(result(false, "An error occurred. Please try again."))
	}

	return c.JSON(result(true, "Password reset instructions sent to your email!"))
}
