package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

type MatchHandler struct {
	runRepo repositories.MatchRunRepository
	docRepo repositories.DocumentRepository
	worker  services.Worker
}

func NewMatchHandler(
	runRepo repositories.MatchRunRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *MatchHandler {
	return &MatchHandler{
		runRepo: runRepo,
		docRepo: docRepo,
		worker:  worker,
	}
}

// HandleMatch handles POST /match: it queues one resume-vs-job scoring run
// and returns the run ID immediately.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_id is required",
		})
	}

	if req.JobDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_document_id is required",
		})
	}

	resumeDocID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	jobDocID, err := uuid.Parse(req.JobDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_document_id format",
		})
	}

	// Verify documents exist and are the right kind
	resumeDoc, err := h.docRepo.FindByID(resumeDocID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}
	if resumeDoc.Kind != models.KindResume {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_id does not reference a resume",
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

	run := &models.MatchRun{
		ID:               uuid.New(),
		ResumeDocumentID: resumeDocID,
		JobDocumentID:    jobDocID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.runRepo.Create(run); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create match run",
		})
	}

	h.worker.EnqueueRun(run.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.MatchResponse{
		ID:     run.ID.String(),
		Status: string(models.StatusQueued),
	})
}
