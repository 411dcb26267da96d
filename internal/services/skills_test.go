package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "trims and lowercases",
			input:    []string{"  Python ", "SQL"},
			expected: []string{"python", "sql"},
		},
		{
			name:     "collapses internal whitespace",
			input:    []string{"machine   learning", "rest  api"},
			expected: []string{"machine learning", "rest api"},
		},
		{
			name:     "drops empties and dedupes",
			input:    []string{"go", "", "  ", "Go", "GO"},
			expected: []string{"go"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkills(tt.input))
		})
	}
}

func TestScoreSkills(t *testing.T) {
	t.Run("partial required coverage with empty preferred", func(t *testing.T) {
		detail := ScoreSkills(
			[]string{"python", "sql"},
			[]string{"python", "sql", "aws"},
			nil,
		)

		// required coverage 2/3, empty preferred counts as full coverage
		assert.InDelta(t, 76.67, detail.Score, 0.01)
		assert.Equal(t, []string{"python", "sql"}, detail.RequiredMatches)
		assert.Equal(t, []string{"aws"}, detail.MissingRequired)
		assert.Equal(t, "2/3", detail.RequiredCoverage)
		assert.Equal(t, "0/0", detail.PreferredCoverage)
	})

	t.Run("full match", func(t *testing.T) {
		detail := ScoreSkills(
			[]string{"go", "docker", "kubernetes"},
			[]string{"go", "docker"},
			[]string{"kubernetes"},
		)

		assert.InDelta(t, 100.0, detail.Score, 0.001)
		assert.Empty(t, detail.MissingRequired)
		assert.Empty(t, detail.MissingPreferred)
	})

	t.Run("both requirement sets empty gives full credit", func(t *testing.T) {
		detail := ScoreSkills([]string{"python"}, nil, nil)

		assert.InDelta(t, 100.0, detail.Score, 0.001)
		assert.Equal(t, "0/0", detail.RequiredCoverage)
	})

	t.Run("no required skills scores on preferred alone", func(t *testing.T) {
		detail := ScoreSkills(
			[]string{"python"},
			nil,
			[]string{"python", "go"},
		)

		assert.InDelta(t, 50.0, detail.Score, 0.001)
		assert.Equal(t, "1/2", detail.PreferredCoverage)
	})

	t.Run("normalization applies before comparison", func(t *testing.T) {
		detail := ScoreSkills(
			[]string{"  PYTHON  ", "Machine   Learning"},
			[]string{"python", "machine learning"},
			nil,
		)

		assert.InDelta(t, 100.0, detail.Score, 0.001)
	})

	t.Run("coverage always within bounds", func(t *testing.T) {
		detail := ScoreSkills(
			[]string{"a", "b", "c", "a", "b"},
			[]string{"a"},
			[]string{"b", "z"},
		)

		assert.GreaterOrEqual(t, detail.Score, 0.0)
		assert.LessOrEqual(t, detail.Score, 100.0)
		assert.Equal(t, 3, detail.ResumeSkillCount)
	})
}
