package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

type DocumentHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	vectorStore    services.VectorStoreService
}

func NewDocumentHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	vectorStore services.VectorStoreService,
) *DocumentHandler {
	return &DocumentHandler{
		docRepo:        docRepo,
		storageService: storageService,
		vectorStore:    vectorStore,
	}
}

// HandleListDocuments handles GET /documents?kind=resume|job_description.
func (h *DocumentHandler) HandleListDocuments(c *fiber.Ctx) error {
	var kind models.DocumentKind
	switch c.Query("kind") {
	case string(models.KindResume):
		kind = models.KindResume
	case string(models.KindJob):
		kind = models.KindJob
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "kind must be 'resume' or 'job_description'",
		})
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	docs, err := h.docRepo.FindByKind(kind, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}

	return c.JSON(fiber.Map{
		"kind":      string(kind),
		"count":     len(docs),
		"documents": docs,
	})
}

// HandleDeleteDocument handles DELETE /document/:id. The stored file and the
// document's vectors are removed best effort; the database row is the source
// of truth.
func (h *DocumentHandler) HandleDeleteDocument(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID format",
		})
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	if err := h.docRepo.Delete(docID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete document",
		})
	}

	if err := h.storageService.DeleteFile(doc.Filename); err != nil {
		log.Printf("⚠️  Failed to delete file for document %s: %v\n", docID, err)
	}

	if err := h.vectorStore.DeleteDocument(c.Context(), docID.String()); err != nil {
		log.Printf("⚠️  Failed to delete vectors for document %s: %v\n", docID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Document deleted",
		"id":      docID.String(),
	})
}
