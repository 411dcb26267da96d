package services

import (
	"fmt"
	"sort"
	"strings"
)

// SkillDetail is the full breakdown of one skill comparison.
type SkillDetail struct {
	Score             float64  `json:"score"`
	RequiredMatches   []string `json:"required_matches"`
	PreferredMatches  []string `json:"preferred_matches"`
	MissingRequired   []string `json:"missing_required"`
	MissingPreferred  []string `json:"missing_preferred"`
	RequiredCoverage  string   `json:"required_coverage"`
	PreferredCoverage string   `json:"preferred_coverage"`
	ResumeSkillCount  int      `json:"resume_skill_count"`
	RequiredCount     int      `json:"required_skill_count"`
	PreferredCount    int      `json:"preferred_skill_count"`
}

// NormalizeSkills canonicalizes raw skill strings: trims, lowercases,
// collapses internal whitespace and drops empties and duplicates. The result
// is sorted so callers get deterministic display order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		clean := strings.Join(strings.Fields(strings.ToLower(skill)), " ")
		if clean == "" {
			continue
		}
		seen[clean] = struct{}{}
	}

	normalized := make([]string, 0, len(seen))
	for skill := range seen {
		normalized = append(normalized, skill)
	}
	sort.Strings(normalized)

	return normalized
}

// ScoreSkills computes required/preferred coverage between a resume's skills
// and a job's skill lists. An empty requirement set yields full coverage:
// nothing was asked for, so nothing is missing.
func ScoreSkills(resumeSkills, requiredSkills, preferredSkills []string) SkillDetail {
	resumeSet := toSkillSet(NormalizeSkills(resumeSkills))
	requiredNorm := NormalizeSkills(requiredSkills)
	preferredNorm := NormalizeSkills(preferredSkills)

	requiredMatches, missingRequired := splitMatches(requiredNorm, resumeSet)
	preferredMatches, missingPreferred := splitMatches(preferredNorm, resumeSet)

	requiredCoverage := 1.0
	if len(requiredNorm) > 0 {
		requiredCoverage = float64(len(requiredMatches)) / float64(len(requiredNorm))
	}
	preferredCoverage := 1.0
	if len(preferredNorm) > 0 {
		preferredCoverage = float64(len(preferredMatches)) / float64(len(preferredNorm))
	}

	// Required skills are critical; preferred skills are a bonus.
	var score float64
	if len(requiredNorm) > 0 {
		score = requiredCoverage*0.7 + preferredCoverage*0.3
	} else {
		score = preferredCoverage
	}

	return SkillDetail{
		Score:             score * 100,
		RequiredMatches:   requiredMatches,
		PreferredMatches:  preferredMatches,
		MissingRequired:   missingRequired,
		MissingPreferred:  missingPreferred,
		RequiredCoverage:  fmt.Sprintf("%d/%d", len(requiredMatches), len(requiredNorm)),
		PreferredCoverage: fmt.Sprintf("%d/%d", len(preferredMatches), len(preferredNorm)),
		ResumeSkillCount:  len(resumeSet),
		RequiredCount:     len(requiredNorm),
		PreferredCount:    len(preferredNorm),
	}
}

func toSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

// splitMatches partitions a normalized, sorted requirement list into the
// skills present in the resume set and the ones missing from it.
func splitMatches(requirements []string, resumeSet map[string]struct{}) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, skill := range requirements {
		if _, ok := resumeSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}
