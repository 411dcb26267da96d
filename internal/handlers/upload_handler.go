package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload accepts multipart "resume" and/or "job_description" files
// (PDF or plain text) and stores them as documents.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	fields := []struct {
		name string
		kind models.DocumentKind
	}{
		{"resume", models.KindResume},
		{"job_description", models.KindJob},
	}

	var responses []models.UploadResponse

	for _, field := range fields {
		files, exists := form.File[field.name]
		if !exists || len(files) == 0 {
			continue
		}

		for _, file := range files {
			if file.Size > h.maxFileSize {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("%s file too large. Max size: %d bytes", field.name, h.maxFileSize),
				})
			}

			filename, filePath, err := h.storageService.SaveFile(file, string(field.kind))
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("failed to save %s file: %v", field.name, err),
				})
			}

			doc := models.Document{
				ID:               uuid.New(),
				Filename:         filename,
				OriginalFileName: file.Filename,
				Kind:             field.kind,
				FilePath:         filePath,
				CreatedAt:        time.Now(),
				UpdatedAt:        time.Now(),
			}

			if err := h.docRepo.Create(&doc); err != nil {
				// Cleanup uploaded file if database insert fails
				h.storageService.DeleteFile(filename)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": fmt.Sprintf("failed to save %s document record: %v", field.name, err),
				})
			}

			responses = append(responses, models.UploadResponse{
				ID:           doc.ID.String(),
				Filename:     doc.Filename,
				OriginalName: doc.OriginalFileName,
				Kind:         string(doc.Kind),
			})
		}
	}

	if len(responses) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid files uploaded. Please upload 'resume' and/or 'job_description' as PDF or TXT files.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Files uploaded successfully",
		"documents": responses,
	})
}
