package services

import "strings"

// degreeLevel is one entry of the fixed education hierarchy. Matching is
// substring containment against lowercased free text, and the entries are
// checked in declaration order: the first keyword found in a string decides
// that string's level.
type degreeLevel struct {
	keyword string
	level   int
}

var educationHierarchy = []degreeLevel{
	{"high school", 1},
	{"associate", 2},
	{"bachelor", 3},
	{"bs", 3},
	{"ba", 3},
	{"master", 4},
	{"ms", 4},
	{"ma", 4},
	{"mba", 4},
	{"phd", 5},
	{"doctorate", 5},
	{"ph.d", 5},
}

// ScoreEducation compares the highest degree level found in the resume
// against the job's education requirements.
//
// The ordering is deliberate: the first requirement the resume satisfies
// returns 1.0 immediately; failing that, the first requirement with a
// recognizable degree level yields a proximity score with a 0.3 floor. A
// resume education section with no recognizable degree earns 0.3, and
// requirements with no recognizable degree earn a 0.5 default.
func ScoreEducation(resumeEducation, requiredEducation []string) float64 {
	if len(requiredEducation) == 0 {
		return 1.0 // no education requirement
	}
	if len(resumeEducation) == 0 {
		return 0.0
	}

	maxResumeLevel := 0
	for _, edu := range resumeEducation {
		if level, ok := findDegreeLevel(edu); ok && level > maxResumeLevel {
			maxResumeLevel = level
		}
	}
	if maxResumeLevel == 0 {
		// Credit for having an education section at all.
		return 0.3
	}

	for _, req := range requiredEducation {
		level, ok := findDegreeLevel(req)
		if !ok {
			continue
		}
		if maxResumeLevel >= level {
			return 1.0
		}
		// Partial credit based on proximity to the requirement.
		proximity := float64(maxResumeLevel) / float64(level)
		if proximity < 0.3 {
			proximity = 0.3
		}
		return proximity
	}

	return 0.5 // requirement text carries no recognizable degree
}

func findDegreeLevel(text string) (int, bool) {
	lower := strings.ToLower(text)
	for _, entry := range educationHierarchy {
		if strings.Contains(lower, entry.keyword) {
			return entry.level, true
		}
	}
	return 0, false
}
