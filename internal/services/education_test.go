package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEducation(t *testing.T) {
	tests := []struct {
		name     string
		resume   []string
		required []string
		expected float64
	}{
		{
			name:     "no requirement",
			resume:   []string{"bachelor of arts"},
			required: nil,
			expected: 1.0,
		},
		{
			name:     "requirement but no resume education",
			resume:   nil,
			required: []string{"bachelor degree"},
			expected: 0.0,
		},
		{
			name:     "master satisfies bachelor requirement",
			resume:   []string{"Master of Science"},
			required: []string{"Bachelor degree required"},
			expected: 1.0,
		},
		{
			name:     "exact level match",
			resume:   []string{"bachelor of engineering"},
			required: []string{"bachelor degree"},
			expected: 1.0,
		},
		{
			name:     "proximity score below requirement",
			resume:   []string{"associate degree"},
			required: []string{"phd required"},
			expected: 0.4,
		},
		{
			name:     "proximity floor at 0.3",
			resume:   []string{"high school diploma"},
			required: []string{"doctorate preferred"},
			expected: 0.3,
		},
		{
			name:     "unrecognized resume education gets partial credit",
			resume:   []string{"completed several online courses"},
			required: []string{"bachelor degree"},
			expected: 0.3,
		},
		{
			name:     "unrecognized requirement gets default credit",
			resume:   []string{"bachelor of arts"},
			required: []string{"relevant certification"},
			expected: 0.5,
		},
		{
			name:     "first recognizable requirement decides",
			resume:   []string{"master of science"},
			required: []string{"phd required", "bachelor degree"},
			expected: 0.8,
		},
		{
			name:     "first satisfied requirement short-circuits",
			resume:   []string{"master of science"},
			required: []string{"bachelor degree", "phd required"},
			expected: 1.0,
		},
		{
			name:     "highest resume level wins",
			resume:   []string{"high school diploma", "phd in physics"},
			required: []string{"master degree"},
			expected: 1.0,
		},
		{
			name:     "abbreviations recognized",
			resume:   []string{"mba, harvard"},
			required: []string{"bachelor degree"},
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScoreEducation(tt.resume, tt.required), 0.0001)
		})
	}
}
