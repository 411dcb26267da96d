package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

type ResultHandler struct {
	runRepo   repositories.MatchRunRepository
	explainer services.ExplainerService
}

func NewResultHandler(runRepo repositories.MatchRunRepository, explainer services.ExplainerService) *ResultHandler {
	return &ResultHandler{
		runRepo:   runRepo,
		explainer: explainer,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	runID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid match run ID format",
		})
	}

	run, err := h.runRepo.FindByID(runID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Match run not found",
		})
	}

	response := models.ResultResponse{
		ID:     run.ID.String(),
		Status: string(run.Status),
	}

	if run.Status == models.StatusCompleted {
		data := &models.ResultData{}
		if run.OverallScore != nil {
			data.OverallScore = *run.OverallScore
			data.MatchQuality = h.explainer.MatchQuality(*run.OverallScore)
		}
		if run.SkillScore != nil {
			data.SkillScore = *run.SkillScore
		}
		if run.ExperienceScore != nil {
			data.ExperienceScore = *run.ExperienceScore
		}
		if run.EducationScore != nil {
			data.EducationScore = *run.EducationScore
		}
		if run.SemanticScore != nil {
			data.SemanticScore = *run.SemanticScore
		}
		if run.Explanation != nil {
			data.Explanation = *run.Explanation
		}
		if run.EmbeddingKind != nil {
			data.EmbeddingKind = *run.EmbeddingKind
		}

		// Lift the skill gaps out of the stored breakdown blob
		if run.Breakdown != nil {
			for _, v := range gjson.Get(*run.Breakdown, "skill_details.missing_required").Array() {
				data.MissingSkills = append(data.MissingSkills, v.String())
			}
		}

		response.Result = data
	}

	if run.Status == models.StatusFailed && run.ErrorMessage != nil {
		response.ErrorMessage = run.ErrorMessage
	}

	return c.JSON(response)
}
