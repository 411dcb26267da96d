package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"alfredoptarigan/resume-matcher/internal/models"
)

// Weight component names. A Weights map may omit components (omitted ones
// contribute nothing) but may not contain unknown names.
const (
	WeightRequiredSkills  = "required_skills"
	WeightPreferredSkills = "preferred_skills"
	WeightExperience      = "experience"
	WeightEducation       = "education"
	WeightSemantic        = "semantic"
)

// experienceCap bounds the experience contribution before weighting; the
// scorer itself may return up to 1.3 for over-qualified candidates.
const experienceCap = 1.3

var ErrInvalidWeights = errors.New("invalid match weights")

type Weights map[string]float64

// DefaultWeights returns the standard component weighting: required skills
// matter most, semantic similarity is a small tie-breaker.
func DefaultWeights() Weights {
	return Weights{
		WeightRequiredSkills:  0.35,
		WeightPreferredSkills: 0.20,
		WeightExperience:      0.25,
		WeightEducation:       0.15,
		WeightSemantic:        0.05,
	}
}

func (w Weights) validate() error {
	known := map[string]bool{
		WeightRequiredSkills:  true,
		WeightPreferredSkills: true,
		WeightExperience:      true,
		WeightEducation:       true,
		WeightSemantic:        true,
	}

	var sum float64
	for name, value := range w {
		if !known[name] {
			return fmt.Errorf("%w: unknown component %q", ErrInvalidWeights, name)
		}
		if value < 0 {
			return fmt.Errorf("%w: component %q is negative", ErrInvalidWeights, name)
		}
		sum += value
	}

	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("%w: weights must sum to 1.0, got %.3f", ErrInvalidWeights, sum)
	}
	return nil
}

// MatchResult is the immutable outcome of a single scoring run. All scores
// are on a 0-100 scale; ExperienceScore may reach 130 because the displayed
// experience value keeps the over-qualification bonus that the overall score
// caps away.
type MatchResult struct {
	OverallScore       float64            `json:"overall_score"`
	SkillScore         float64            `json:"skill_score"`
	ExperienceScore    float64            `json:"experience_score"`
	EducationScore     float64            `json:"education_score"`
	SemanticScore      float64            `json:"semantic_score"`
	SkillDetail        SkillDetail        `json:"skill_details"`
	WeightedComponents map[string]float64 `json:"weighted_components"`
	Summary            map[string]string  `json:"match_summary"`
}

// RankedMatch is one entry of a batch matching result. Err is set when that
// item failed; its score is then 0 and Result is nil.
type RankedMatch struct {
	Index  int          `json:"resume_index"`
	Score  float64      `json:"match_score"`
	Result *MatchResult `json:"details,omitempty"`
	Err    string       `json:"error,omitempty"`
}

type MatchEngine interface {
	Match(profile *models.Profile, requisition *models.Requisition, resumeEmbedding, jobEmbedding []float32) *MatchResult
	BatchMatch(profiles []*models.Profile, requisition *models.Requisition, resumeEmbeddings [][]float32, jobEmbedding []float32) []RankedMatch
}

type matchEngine struct {
	weights Weights
}

// NewMatchEngine builds a scoring engine from the given component weights.
// A nil map selects DefaultWeights. Construction fails with ErrInvalidWeights
// when the weights do not sum to 1.0 within 0.001, contain negative values,
// or name unknown components; omitted components simply contribute zero.
func NewMatchEngine(weights Weights) (MatchEngine, error) {
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := weights.validate(); err != nil {
		return nil, err
	}

	log.Printf("✅ Match engine initialized with weights: %v\n", weights)
	return &matchEngine{weights: weights}, nil
}

// Match scores one candidate profile against one requisition. Embeddings are
// optional; when either is missing the semantic component scores zero.
func (m *matchEngine) Match(profile *models.Profile, requisition *models.Requisition, resumeEmbedding, jobEmbedding []float32) *MatchResult {
	if profile == nil {
		profile = &models.Profile{}
	}
	if requisition == nil {
		requisition = &models.Requisition{}
	}

	// Preferred skills never double-count skills already required.
	required := NormalizeSkills(requisition.RequiredSkills)
	preferred := subtractSkills(NormalizeSkills(requisition.PreferredSkills), required)

	skillDetail := ScoreSkills(profile.Skills, required, preferred)
	experienceScore := ScoreExperience(profile.ExperienceYears, requisition.ExperienceRequired)
	educationScore := ScoreEducation(profile.Education, requisition.EducationRequired)

	semanticScore := 0.0
	if len(resumeEmbedding) > 0 && len(jobEmbedding) > 0 {
		semanticScore = CosineSimilarity(resumeEmbedding, jobEmbedding)
	}

	cappedExperience := math.Min(experienceScore, experienceCap)
	preferredRatio := float64(len(skillDetail.PreferredMatches)) / math.Max(float64(skillDetail.PreferredCount), 1)

	components := map[string]float64{
		WeightRequiredSkills:  m.weights[WeightRequiredSkills] * (skillDetail.Score / 100),
		WeightPreferredSkills: m.weights[WeightPreferredSkills] * preferredRatio,
		WeightExperience:      m.weights[WeightExperience] * cappedExperience,
		WeightEducation:       m.weights[WeightEducation] * educationScore,
		WeightSemantic:        m.weights[WeightSemantic] * semanticScore,
	}

	overall := 0.0
	for name, value := range components {
		overall += value
		components[name] = value * 100
	}
	overall = clamp(overall*100, 0, 100)

	return &MatchResult{
		OverallScore:       overall,
		SkillScore:         skillDetail.Score,
		ExperienceScore:    cappedExperience * 100,
		EducationScore:     educationScore * 100,
		SemanticScore:      semanticScore * 100,
		SkillDetail:        skillDetail,
		WeightedComponents: components,
		Summary: map[string]string{
			"skills":              fmt.Sprintf("%d/%d required skills matched", len(skillDetail.RequiredMatches), skillDetail.RequiredCount),
			"experience":          fmt.Sprintf("%g/%g years", profile.ExperienceYears, requisition.ExperienceRequired),
			"education":           educationVerdict(educationScore),
			"semantic_similarity": fmt.Sprintf("%.1f%%", semanticScore*100),
		},
	}
}

// BatchMatch scores many profiles against one requisition. A failure on one
// profile is recorded as an error marker on that entry and does not abort the
// batch. Results come back sorted by score descending; ties keep the input
// order.
func (m *matchEngine) BatchMatch(profiles []*models.Profile, requisition *models.Requisition, resumeEmbeddings [][]float32, jobEmbedding []float32) []RankedMatch {
	results := make([]RankedMatch, 0, len(profiles))

	for i, profile := range profiles {
		var embedding []float32
		if i < len(resumeEmbeddings) {
			embedding = resumeEmbeddings[i]
		}

		entry := recoverMatch(i, func() *MatchResult {
			return m.Match(profile, requisition, embedding, jobEmbedding)
		})
		if entry.Err != "" {
			log.Printf("❌ Batch match failed for resume %d: %s\n", i, entry.Err)
		}
		results = append(results, entry)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// recoverMatch converts a panic during scoring into an error marker on that
// entry, so one bad item cannot abort a batch.
func recoverMatch(index int, score func() *MatchResult) (entry RankedMatch) {
	entry = RankedMatch{Index: index}

	defer func() {
		if r := recover(); r != nil {
			entry = RankedMatch{Index: index, Err: fmt.Sprintf("match failed: %v", r)}
		}
	}()

	result := score()
	entry.Score = result.OverallScore
	entry.Result = result
	return entry
}

func subtractSkills(skills, remove []string) []string {
	removeSet := toSkillSet(remove)
	kept := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := removeSet[s]; !ok {
			kept = append(kept, s)
		}
	}
	return kept
}

func educationVerdict(score float64) string {
	switch {
	case score >= 0.8:
		return "Meets requirement"
	case score >= 0.5:
		return "Partial match"
	default:
		return "Below requirement"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
