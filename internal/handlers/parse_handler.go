package handlers

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

type ParseHandler struct {
	storageService services.StorageService
	extractor      services.DocumentExtractor
	maxFileSize    int64
}

func NewParseHandler(
	storageService services.StorageService,
	extractor services.DocumentExtractor,
	maxFileSize int64,
) *ParseHandler {
	return &ParseHandler{
		storageService: storageService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
	}
}

// HandleParse handles POST /parse-resume. The upload is held as a temp file
// only for the duration of extraction and removed on every exit path.
func (h *ParseHandler) HandleParse(c *fiber.Ctx) error {
	file, err := h.uploadedFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file uploaded: expected multipart field 'resume' or 'file'",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filePath, err := h.storageService.SaveUpload(file)
	if err != nil {
		return respondError(c, err)
	}
	defer func() {
		if err := h.storageService.DeleteFile(filePath); err != nil {
			log.Printf("⚠️ Failed to remove temp upload %s: %v", filePath, err)
		}
	}()

	text, err := h.extractor.ExtractText(filePath, file.Filename)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.ParseResponse{Text: text})
}

func (h *ParseHandler) uploadedFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	file, err := c.FormFile("resume")
	if err == nil {
		return file, nil
	}
	return c.FormFile("file")
}
