package services

import (
	"fmt"
	"strings"
)

// ExplainerService renders a human-readable explanation for a match result
// from fixed templates. It is a presentation collaborator: it reads the
// result, it never changes a score.
type ExplainerService interface {
	Explain(result *MatchResult) string
	MatchQuality(score float64) string
	Recommendation(score float64) string
}

type explainerService struct{}

func NewExplainerService() ExplainerService {
	return &explainerService{}
}

// MatchQuality buckets an overall score into a quality label.
func (e *explainerService) MatchQuality(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "poor"
	}
}

// Recommendation maps an overall score to a hiring recommendation.
func (e *explainerService) Recommendation(score float64) string {
	switch {
	case score >= 90:
		return "Highly recommended for immediate interview consideration"
	case score >= 80:
		return "Strong candidate worth interviewing"
	case score >= 60:
		return "Consider if stronger candidates are unavailable"
	default:
		return "Not recommended for this role"
	}
}

// Explain implements ExplainerService.
func (e *explainerService) Explain(result *MatchResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder

	switch e.MatchQuality(result.OverallScore) {
	case "excellent":
		b.WriteString("EXCELLENT MATCH - This candidate strongly aligns with the job requirements.\n")
	case "good":
		b.WriteString("STRONG MATCH - Candidate meets most requirements with solid core skills.\n")
	case "fair":
		b.WriteString("PARTIAL MATCH - Candidate has relevant experience with some skill gaps.\n")
	default:
		b.WriteString("POOR MATCH - Significant gaps between candidate and job requirements.\n")
	}

	b.WriteString(fmt.Sprintf("Skills: %s (%s required, %s preferred).\n",
		result.Summary["skills"],
		result.SkillDetail.RequiredCoverage,
		result.SkillDetail.PreferredCoverage,
	))

	if len(result.SkillDetail.MissingRequired) > 0 {
		b.WriteString(fmt.Sprintf("Missing required skills: %s.\n",
			strings.Join(result.SkillDetail.MissingRequired, ", ")))
	}

	b.WriteString(fmt.Sprintf("Experience: %s. Education: %s.\n",
		result.Summary["experience"],
		result.Summary["education"],
	))

	b.WriteString("Recommendation: " + e.Recommendation(result.OverallScore) + ".")

	return b.String()
}
