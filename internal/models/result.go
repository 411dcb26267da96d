package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Kind         string `json:"kind"`
}

type MatchRequest struct {
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	JobDocumentID    string `json:"job_document_id" validate:"required,uuid"`
}

type MatchResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type RankRequest struct {
	ResumeDocumentIDs []string `json:"resume_document_ids" validate:"required"`
	JobDocumentID     string   `json:"job_document_id" validate:"required,uuid"`
}

type RankEntry struct {
	ResumeDocumentID string            `json:"resume_document_id"`
	MatchScore       float64           `json:"match_score"`
	Scores           *ScoreData        `json:"scores,omitempty"`
	Summary          map[string]string `json:"summary,omitempty"`
	Error            string            `json:"error,omitempty"`
}

type ScoreData struct {
	Overall    float64 `json:"overall"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Semantic   float64 `json:"semantic"`
}

type ResultResponse struct {
	ID           string      `json:"id"`
	Status       string      `json:"status"`
	Result       *ResultData `json:"result,omitempty"`
	ErrorMessage *string     `json:"error_message,omitempty"`
}

type ResultData struct {
	OverallScore    float64  `json:"overall_score"`
	SkillScore      float64  `json:"skill_score"`
	ExperienceScore float64  `json:"experience_score"`
	EducationScore  float64  `json:"education_score"`
	SemanticScore   float64  `json:"semantic_score"`
	MatchQuality    string   `json:"match_quality"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
	Explanation     string   `json:"explanation"`
	EmbeddingKind   string   `json:"embedding_kind"`
}
