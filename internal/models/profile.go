package models

// Profile is the structured candidate record derived from a resume by the
// document parsing collaborator. Fields default to their zero values when the
// underlying text gave nothing to extract; the matching engine treats missing
// data as legitimate input, not an error.
type Profile struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Education       []string `json:"education"`
	Summary         string   `json:"summary,omitempty"`
}

// Requisition is the structured job-requirement record derived from a job
// description. RequiredSkills and PreferredSkills may overlap as parsed; the
// matching engine removes required skills from the preferred set before
// scoring. ExperienceRequired of 0 and an empty EducationRequired both mean
// "unconstrained".
type Requisition struct {
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	ExperienceRequired float64  `json:"experience_required"`
	EducationRequired  []string `json:"education_required"`
}
