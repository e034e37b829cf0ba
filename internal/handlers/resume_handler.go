package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

type ResumeHandler struct {
	matcher services.MatcherService
}

func NewResumeHandler(matcher services.MatcherService) *ResumeHandler {
	return &ResumeHandler{
		matcher: matcher,
	}
}

// HandleGenerate handles POST /generate-resume. The profile arrives from the
// frontend exactly as the GitHub fetch endpoint produced it.
func (h *ResumeHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateResumeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	content, err := h.matcher.ResumeFromProfile(c.UserContext(), &req.GithubData)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.GenerateResumeResponse{ResumeContent: content})
}
