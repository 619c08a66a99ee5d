package handlers

import "github.com/gofiber/fiber/v2"

type recommendRequest struct {
	Mood       string `json:"mood"`
	ModuleType string `json:"module_type"`
}

// GetRecommendations returns up to 10 random songs matching the reported
// mood. The module type is an opaque label chosen by the front-end and is
// echoed back untouched.
func (h *Handler) GetRecommendations(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}

	if req.Mood == "" {
		return c.JSON(fiber.Map{"success": false, "error": "No mood detected"})
	}

	songs, err := h.catalog.SongsByMood(c.Context(), req.Mood)
	if err != nil {
		h.log.Error().Err(err).Str("mood", req.Mood).Msg("song lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "could not load recommendations"})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"dominant_mood": req.Mood,
		"module_type":   req.ModuleType,
		"songs":         songs,
	})
}
