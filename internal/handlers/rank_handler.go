package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

// RankHandler ranks many stored resumes against one stored job description
// in a single synchronous call.
type RankHandler struct {
	docRepo     repositories.DocumentRepository
	textExtract services.TextExtractService
	extractor   services.ExtractorService
	embeddings  services.EmbeddingSource
	engine      services.MatchEngine
	explainer   services.ExplainerService
}

func NewRankHandler(
	docRepo repositories.DocumentRepository,
	textExtract services.TextExtractService,
	extractor services.ExtractorService,
	embeddings services.EmbeddingSource,
	engine services.MatchEngine,
	explainer services.ExplainerService,
) *RankHandler {
	return &RankHandler{
		docRepo:     docRepo,
		textExtract: textExtract,
		extractor:   extractor,
		embeddings:  embeddings,
		engine:      engine,
		explainer:   explainer,
	}
}

// HandleRank handles POST /rank. A resume that cannot be loaded or parsed
// becomes an error entry with score 0 instead of failing the whole batch.
func (h *RankHandler) HandleRank(c *fiber.Ctx) error {
	var req models.RankRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.ResumeDocumentIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_ids is required",
		})
	}

	jobDocID, err := uuid.Parse(req.JobDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_document_id format",
		})
	}

	jobDoc, err := h.docRepo.FindByID(jobDocID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job document not found",
		})
	}
	if jobDoc.Kind != models.KindJob {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_document_id does not reference a job description",
		})
	}

	jobText, err := h.textExtract.ExtractText(jobDoc.FilePath)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract job text: %v", err),
		})
	}
	requisition := h.extractor.ParseJobDescription(services.CleanText(jobText))

	jobEmbedding, err := h.embeddings.Embed(c.Context(), jobText)
	if err != nil {
		log.Printf("⚠️  Failed to embed job description, semantic scores will be 0: %v\n", err)
		jobEmbedding = nil
	}

	// Load all referenced resumes in one query; broken IDs are set aside as
	// error entries during preparation.
	var validIDs []uuid.UUID
	for _, rawID := range req.ResumeDocumentIDs {
		if id, parseErr := uuid.Parse(rawID); parseErr == nil {
			validIDs = append(validIDs, id)
		}
	}

	docsByID := make(map[uuid.UUID]models.Document, len(validIDs))
	if len(validIDs) > 0 {
		docs, err := h.docRepo.FindByIDs(validIDs)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load resume documents",
			})
		}
		for _, doc := range docs {
			docsByID[doc.ID] = doc
		}
	}

	var (
		profiles   []*models.Profile
		embeddings [][]float32
		resumeIDs  []string
		failed     []models.RankEntry
	)

	for _, rawID := range req.ResumeDocumentIDs {
		entry, profile, embedding := h.prepareResume(c, rawID, docsByID)
		if entry.Error != "" {
			failed = append(failed, entry)
			continue
		}
		profiles = append(profiles, profile)
		embeddings = append(embeddings, embedding)
		resumeIDs = append(resumeIDs, rawID)
	}

	ranked := h.engine.BatchMatch(profiles, requisition, embeddings, jobEmbedding)

	entries := make([]models.RankEntry, 0, len(ranked)+len(failed))
	for _, match := range ranked {
		entry := models.RankEntry{
			ResumeDocumentID: resumeIDs[match.Index],
			MatchScore:       match.Score,
			Error:            match.Err,
		}
		if match.Result != nil {
			entry.Scores = &models.ScoreData{
				Overall:    match.Result.OverallScore,
				Skills:     match.Result.SkillScore,
				Experience: match.Result.ExperienceScore,
				Education:  match.Result.EducationScore,
				Semantic:   match.Result.SemanticScore,
			}
			entry.Summary = match.Result.Summary
		}
		entries = append(entries, entry)
	}

	// Failed items rank last, in their original request order.
	entries = append(entries, failed...)

	return c.JSON(fiber.Map{
		"job_document_id": jobDoc.ID.String(),
		"embedding_kind":  h.embeddings.Kind(),
		"count":           len(entries),
		"results":         entries,
	})
}

func (h *RankHandler) prepareResume(c *fiber.Ctx, rawID string, docsByID map[uuid.UUID]models.Document) (models.RankEntry, *models.Profile, []float32) {
	entry := models.RankEntry{ResumeDocumentID: rawID}

	docID, err := uuid.Parse(rawID)
	if err != nil {
		entry.Error = "invalid document ID format"
		return entry, nil, nil
	}

	doc, ok := docsByID[docID]
	if !ok {
		entry.Error = "resume document not found"
		return entry, nil, nil
	}
	if doc.Kind != models.KindResume {
		entry.Error = "document is not a resume"
		return entry, nil, nil
	}

	text, err := h.textExtract.ExtractText(doc.FilePath)
	if err != nil {
		entry.Error = fmt.Sprintf("failed to extract text: %v", err)
		return entry, nil, nil
	}

	profile := h.extractor.ParseResume(services.CleanText(text))

	embedding, err := h.embeddings.Embed(c.Context(), text)
	if err != nil {
		log.Printf("⚠️  Failed to embed resume %s: %v\n", rawID, err)
		embedding = nil
	}

	return entry, profile, embedding
}
