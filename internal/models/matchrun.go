package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchRunStatus string

const (
	StatusQueued     MatchRunStatus = "queued"
	StatusProcessing MatchRunStatus = "processing"
	StatusCompleted  MatchRunStatus = "completed"
	StatusFailed     MatchRunStatus = "failed"
)

// MatchRun is one resume-vs-job scoring request and its eventual outcome.
type MatchRun struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeDocumentID uuid.UUID      `gorm:"type:uuid;not null" json:"resume_document_id"`
	JobDocumentID    uuid.UUID      `gorm:"type:uuid;not null" json:"job_document_id"`
	Status           MatchRunStatus `gorm:"not null;default:'queued'" json:"status"`
	OverallScore     *float64       `gorm:"type:decimal(5,2)" json:"overall_score,omitempty"`
	SkillScore       *float64       `gorm:"type:decimal(5,2)" json:"skill_score,omitempty"`
	ExperienceScore  *float64       `gorm:"type:decimal(5,2)" json:"experience_score,omitempty"`
	EducationScore   *float64       `gorm:"type:decimal(5,2)" json:"education_score,omitempty"`
	SemanticScore    *float64       `gorm:"type:decimal(5,2)" json:"semantic_score,omitempty"`
	Breakdown        *string        `gorm:"type:text" json:"breakdown,omitempty"`
	Explanation      *string        `gorm:"type:text" json:"explanation,omitempty"`
	EmbeddingKind    *string        `gorm:"type:text" json:"embedding_kind,omitempty"`
	ErrorMessage     *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
	JobDocument    Document `gorm:"foreignKey:JobDocumentID" json:"-"`
}

func (MatchRun) TableName() string {
	return "match_runs"
}
