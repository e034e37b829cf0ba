package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

type CoverLetterHandler struct {
	matcher services.MatcherService
}

func NewCoverLetterHandler(matcher services.MatcherService) *CoverLetterHandler {
	return &CoverLetterHandler{
		matcher: matcher,
	}
}

// HandleGenerate handles POST /generate-cover-letter. The model's completion
// is returned as-is: the output is prose, not structured data.
func (h *CoverLetterHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	letter, err := h.matcher.CoverLetter(c.UserContext(), req.ResumeText, req.JobDescription)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.CoverLetterResponse{CoverLetter: letter})
}
