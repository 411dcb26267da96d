package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

// SimilarHandler answers similarity queries against the vector store: given a
// job description it finds the closest stored resumes, and vice versa.
type SimilarHandler struct {
	docRepo     repositories.DocumentRepository
	textExtract services.TextExtractService
	embeddings  services.EmbeddingSource
	vectorStore services.VectorStoreService
}

func NewSimilarHandler(
	docRepo repositories.DocumentRepository,
	textExtract services.TextExtractService,
	embeddings services.EmbeddingSource,
	vectorStore services.VectorStoreService,
) *SimilarHandler {
	return &SimilarHandler{
		docRepo:     docRepo,
		textExtract: textExtract,
		embeddings:  embeddings,
		vectorStore: vectorStore,
	}
}

type similarEntry struct {
	DocumentID string  `json:"document_id"`
	Score      float32 `json:"score"`
	Kind       string  `json:"kind"`
	Snippet    string  `json:"snippet,omitempty"`
}

// HandleFindSimilar handles GET /similar/:id.
func (h *SimilarHandler) HandleFindSimilar(c *fiber.Ctx) error {
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

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	// Search across the opposite kind: resumes for a job, jobs for a resume.
	targetKind := models.KindJob
	if doc.Kind == models.KindJob {
		targetKind = models.KindResume
	}

	text, err := h.textExtract.ExtractText(doc.FilePath)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract document text: %v", err),
		})
	}

	embedding, err := h.embeddings.Embed(c.Context(), text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to embed document: %v", err),
		})
	}

	results, err := h.vectorStore.SearchSimilar(c.Context(), embedding, string(targetKind), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Similarity search failed",
		})
	}

	entries := make([]similarEntry, 0, len(results))
	for _, r := range results {
		snippet := r.Text
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		entries = append(entries, similarEntry{
			DocumentID: r.ID,
			Score:      r.Score,
			Kind:       r.DocKind,
			Snippet:    snippet,
		})
	}

	return c.JSON(fiber.Map{
		"document_id":    doc.ID.String(),
		"target_kind":    string(targetKind),
		"embedding_kind": h.embeddings.Kind(),
		"count":          len(entries),
		"results":        entries,
	})
}
