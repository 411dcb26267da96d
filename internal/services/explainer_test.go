package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchQuality(t *testing.T) {
	explainer := NewExplainerService()

	tests := []struct {
		score float64
		want  string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{89.9, "good"},
		{80, "good"},
		{79.9, "fair"},
		{60, "fair"},
		{59.9, "poor"},
		{0, "poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, explainer.MatchQuality(tt.score), "score %.1f", tt.score)
	}
}

func TestRecommendation(t *testing.T) {
	explainer := NewExplainerService()

	assert.Contains(t, explainer.Recommendation(92), "Highly recommended")
	assert.Contains(t, explainer.Recommendation(85), "worth interviewing")
	assert.Contains(t, explainer.Recommendation(65), "stronger candidates")
	assert.Contains(t, explainer.Recommendation(30), "Not recommended")
}

func TestExplain(t *testing.T) {
	explainer := NewExplainerService()

	t.Run("nil result yields empty string", func(t *testing.T) {
		assert.Empty(t, explainer.Explain(nil))
	})

	t.Run("includes missing required skills", func(t *testing.T) {
		result := &MatchResult{
			OverallScore: 72.5,
			SkillDetail: SkillDetail{
				MissingRequired:   []string{"kubernetes", "terraform"},
				RequiredCoverage:  "2/4",
				PreferredCoverage: "0/1",
			},
			Summary: map[string]string{
				"skills":     "2/4 required skills matched",
				"experience": "4/3 years",
				"education":  "meets requirement",
			},
		}

		text := explainer.Explain(result)

		assert.Contains(t, text, "PARTIAL MATCH")
		assert.Contains(t, text, "Missing required skills: kubernetes, terraform.")
		assert.Contains(t, text, "Experience: 4/3 years.")
		assert.Contains(t, text, "Recommendation: Consider if stronger candidates are unavailable.")
	})

	t.Run("omits missing skills line when none missing", func(t *testing.T) {
		result := &MatchResult{
			OverallScore: 91,
			SkillDetail: SkillDetail{
				MissingRequired:   []string{},
				RequiredCoverage:  "3/3",
				PreferredCoverage: "1/1",
			},
			Summary: map[string]string{
				"skills":     "3/3 required skills matched",
				"experience": "6/4 years",
				"education":  "meets requirement",
			},
		}

		text := explainer.Explain(result)

		assert.Contains(t, text, "EXCELLENT MATCH")
		assert.NotContains(t, text, "Missing required skills")
	})
}
