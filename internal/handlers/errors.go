package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/services"
)

// statusForError maps the service error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrMissingVariable),
		errors.Is(err, services.ErrUnsupportedFileType):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrProfileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrExternalFetch):
		return fiber.StatusBadGateway
	case errors.Is(err, services.ErrModelUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrModelError):
		return fiber.StatusBadGateway
	case errors.Is(err, services.ErrExtractionFailure):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
