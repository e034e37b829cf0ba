package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/services"
)

type GithubHandler struct {
	githubService services.GithubService
}

func NewGithubHandler(githubService services.GithubService) *GithubHandler {
	return &GithubHandler{
		githubService: githubService,
	}
}

// HandleGetProfile handles GET /github/:username.
func (h *GithubHandler) HandleGetProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	profile, err := h.githubService.FetchProfile(c.UserContext(), username)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}
