package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

type PDFHandler struct {
	renderer services.PDFRenderService
}

func NewPDFHandler(renderer services.PDFRenderService) *PDFHandler {
	return &PDFHandler{
		renderer: renderer,
	}
}

// HandleDownload handles POST /download-pdf and streams the rendered
// document back as an attachment.
func (h *PDFHandler) HandleDownload(c *fiber.Ctx) error {
	var req models.DownloadPDFRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	pdfData, err := h.renderer.RenderPDF(c.UserContext(), req.ResumeContent)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdfData)
}
