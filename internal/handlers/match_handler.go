package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

type MatchHandler struct {
	matcher services.MatcherService
}

func NewMatchHandler(matcher services.MatcherService) *MatchHandler {
	return &MatchHandler{
		matcher: matcher,
	}
}

// HandleMatch handles POST /match.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	result, err := h.matcher.Match(c.UserContext(), req.ResumeText, req.JobDescription)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
