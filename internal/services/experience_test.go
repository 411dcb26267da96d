package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreExperience(t *testing.T) {
	tests := []struct {
		name          string
		resumeYears   float64
		requiredYears float64
		expected      float64
	}{
		{"no requirement", 2, 0, 1.0},
		{"negative requirement treated as unconstrained", 2, -1, 1.0},
		{"exact match", 3, 3, 1.0},
		{"overqualified bonus", 4, 3, 1.1},
		{"bonus capped at 30 percent", 6, 3, 1.3},
		{"far overqualified still capped", 20, 3, 1.3},
		{"mild underqualification", 3, 4, 0.75},
		{"exactly half qualified", 2, 4, 0.5},
		{"severe underqualification penalty", 1, 5, 0.16},
		{"just below half", 1.9, 4, 0.38},
		{"zero experience", 0, 5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScoreExperience(tt.resumeYears, tt.requiredYears), 0.0001)
		})
	}
}

func TestScoreExperienceMonotonic(t *testing.T) {
	// For a fixed requirement the score never decreases as years grow.
	const requiredYears = 4.0

	prev := -1.0
	for years := 0.0; years <= 12; years += 0.5 {
		score := ScoreExperience(years, requiredYears)
		assert.GreaterOrEqual(t, score, prev, "score decreased at %v years", years)
		prev = score
	}
}
