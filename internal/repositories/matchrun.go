package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-matcher/internal/models"
)

type MatchRunRepository interface {
	Create(run *models.MatchRun) error
	FindByID(id uuid.UUID) (*models.MatchRun, error)
	UpdateStatus(id uuid.UUID, status models.MatchRunStatus) error
	UpdateResult(id uuid.UUID, result *MatchRunUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingRuns(limit int) ([]models.MatchRun, error)
}

type MatchRunUpdateData struct {
	OverallScore    *float64
	SkillScore      *float64
	ExperienceScore *float64
	EducationScore  *float64
	SemanticScore   *float64
	Breakdown       *string
	Explanation     *string
	EmbeddingKind   *string
}

type matchRunRepository struct {
	db *gorm.DB
}

func NewMatchRunRepository(db *gorm.DB) MatchRunRepository {
	return &matchRunRepository{db: db}
}

func (r *matchRunRepository) Create(run *models.MatchRun) error {
	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create match run: %w", err)
	}
	return nil
}

func (r *matchRunRepository) FindByID(id uuid.UUID) (*models.MatchRun, error) {
	var run models.MatchRun
	if err := r.db.Where("id = ?", id).First(&run).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("match run not found")
		}
		return nil, fmt.Errorf("failed to find match run: %w", err)
	}
	return &run, nil
}

func (r *matchRunRepository) UpdateStatus(id uuid.UUID, status models.MatchRunStatus) error {
	result := r.db.Model(&models.MatchRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match run not found")
	}

	return nil
}

func (r *matchRunRepository) UpdateResult(id uuid.UUID, data *MatchRunUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.OverallScore != nil {
		updates["overall_score"] = *data.OverallScore
	}
	if data.SkillScore != nil {
		updates["skill_score"] = *data.SkillScore
	}
	if data.ExperienceScore != nil {
		updates["experience_score"] = *data.ExperienceScore
	}
	if data.EducationScore != nil {
		updates["education_score"] = *data.EducationScore
	}
	if data.SemanticScore != nil {
		updates["semantic_score"] = *data.SemanticScore
	}
	if data.Breakdown != nil {
		updates["breakdown"] = *data.Breakdown
	}
	if data.Explanation != nil {
		updates["explanation"] = *data.Explanation
	}
	if data.EmbeddingKind != nil {
		updates["embedding_kind"] = *data.EmbeddingKind
	}

	result := r.db.Model(&models.MatchRun{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match run not found")
	}

	return nil
}

func (r *matchRunRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.MatchRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match run not found")
	}

	return nil
}

func (r *matchRunRepository) FindPendingRuns(limit int) ([]models.MatchRun, error) {
	var runs []models.MatchRun
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&runs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending runs: %w", err)
	}

	return runs, nil
}
