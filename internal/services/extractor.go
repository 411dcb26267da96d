package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/resume-matcher/internal/models"
)

// ExtractorService turns free resume/job text into the structured records the
// matching engine consumes. Extraction is best effort keyword and pattern
// detection; it never fails, it just finds less.
type ExtractorService interface {
	ParseResume(text string) *models.Profile
	ParseJobDescription(text string) *models.Requisition
}

type extractorService struct {
	skillKeywords  []string
	skillVariants  map[string]string
	expPatterns    []*regexp.Regexp
	yearRangeRe    *regexp.Regexp
	eduPhraseRe    *regexp.Regexp
	requiredExpRes []*regexp.Regexp
}

// skillCatalog groups the known skill vocabulary by category. Only the flat
// keyword list matters for detection; the grouping keeps the catalog readable.
var skillCatalog = map[string][]string{
	"programming":    {"python", "java", "javascript", "c++", "sql", "r", "go", "typescript", "c#", "ruby", "php", "swift", "kotlin", "rust", "scala"},
	"databases":      {"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite", "dynamodb", "cassandra", "firebase"},
	"cloud":          {"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible", "vagrant"},
	"web_frameworks": {"django", "flask", "react", "angular", "vue", "node.js", "express.js", "spring", "laravel", "ruby on rails", "asp.net", "fastapi"},
	"methodologies":  {"agile", "scrum", "kanban", "devops", "ci/cd", "tdd", "bdd", "waterfall"},
	"tools":          {"git", "jira", "confluence", "slack", "postman", "figma", "trello", "asana", "github", "gitlab"},
	"data_science":   {"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "spark", "hadoop", "tableau", "power bi", "matplotlib", "seaborn"},
	"mobile":         {"android", "ios", "react native", "flutter", "xamarin", "ionic"},
	"soft_skills":    {"leadership", "communication", "teamwork", "problem-solving", "analytical", "critical thinking", "time management"},
	"compound":       {"rest api", "microservices", "machine learning", "deep learning", "artificial intelligence", "data mining", "cloud computing", "version control"},
}

// skillVariants maps spelling variants to their canonical skill name.
var skillVariants = map[string]string{
	"rest":                   "rest api",
	"restful":                "rest api",
	"restapi":                "rest api",
	"microsoft sql":          "sql",
	"ms sql":                 "sql",
	"js":                     "javascript",
	"ecmascript":             "javascript",
	"react.js":               "react",
	"angularjs":              "angular",
	"vue.js":                 "vue",
	"node":                   "node.js",
	"express":                "express.js",
	"amazon web services":    "aws",
	"microsoft azure":        "azure",
	"google cloud platform":  "gcp",
	"google cloud":           "gcp",
	"cicd":                   "ci/cd",
	"continuous integration": "ci/cd",
	"k8s":                    "kubernetes",
}

func NewExtractorService() ExtractorService {
	keywords := make([]string, 0, 128)
	for _, skills := range skillCatalog {
		keywords = append(keywords, skills...)
	}
	sort.Strings(keywords)

	expPatterns := []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*experience`),
		regexp.MustCompile(`experience\D*?(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*developer`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*engineer`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*professional`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*work`),
	}

	requiredExpRes := []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*experience`),
		regexp.MustCompile(`experience\D*?(\d+)\+?\s*years?`),
		regexp.MustCompile(`minimum\D*?(\d+)\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*required`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+\S*\s*minimum`),
	}

	return &extractorService{
		skillKeywords:  keywords,
		skillVariants:  skillVariants,
		expPatterns:    expPatterns,
		yearRangeRe:    regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|present|current|now)`),
		eduPhraseRe:    regexp.MustCompile(`(bachelor|b\.?s\.?|b\.?a\.?|b\.?tech|master|m\.?s\.?|m\.?a\.?|mba|ph\.?d|doctorate|associate|diploma|high school)[^.\n,;]*`),
		requiredExpRes: requiredExpRes,
	}
}

// ParseResume extracts skills, years of experience and education phrases
// from resume text.
func (e *extractorService) ParseResume(text string) *models.Profile {
	lower := strings.ToLower(text)

	summary := text
	if len(summary) > 500 {
		cut := 500
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut] + "..."
	}

	return &models.Profile{
		Skills:          e.findSkills(lower),
		ExperienceYears: e.findResumeYears(lower),
		Education:       e.findEducation(lower),
		Summary:         summary,
	}
}

// ParseJobDescription extracts required/preferred skills, the experience
// requirement and education requirements from job description text. Skills
// found under a "preferred"/"nice to have" section are classified preferred;
// everything else counts as required.
func (e *extractorService) ParseJobDescription(text string) *models.Requisition {
	lower := strings.ToLower(text)

	required := make(map[string]struct{})
	preferred := make(map[string]struct{})

	section := "required"
	for _, line := range strings.Split(lower, "\n") {
		switch {
		case strings.Contains(line, "preferred") || strings.Contains(line, "nice to have") || strings.Contains(line, "bonus"):
			section = "preferred"
		case strings.Contains(line, "required") || strings.Contains(line, "must have") || strings.Contains(line, "qualifications"):
			section = "required"
		}

		for _, skill := range e.findSkills(line) {
			if section == "preferred" {
				preferred[skill] = struct{}{}
			} else {
				required[skill] = struct{}{}
			}
		}
	}

	return &models.Requisition{
		RequiredSkills:     skillSetToSlice(required),
		PreferredSkills:    skillSetToSlice(preferred),
		ExperienceRequired: e.findRequiredYears(lower),
		EducationRequired:  e.findEducation(lower),
	}
}

func (e *extractorService) findSkills(lowerText string) []string {
	found := make(map[string]struct{})

	for _, skill := range e.skillKeywords {
		if containsWord(lowerText, skill) {
			found[skill] = struct{}{}
		}
	}
	for variant, canonical := range e.skillVariants {
		if containsWord(lowerText, variant) {
			found[canonical] = struct{}{}
		}
	}

	return skillSetToSlice(found)
}

// findResumeYears scans for explicit "N years ..." phrases and keeps the
// largest, falling back to employment date ranges like "2018 - 2022".
func (e *extractorService) findResumeYears(lowerText string) float64 {
	years := 0
	for _, re := range e.expPatterns {
		for _, match := range re.FindAllStringSubmatch(lowerText, -1) {
			if v, err := strconv.Atoi(match[1]); err == nil && v > years {
				years = v
			}
		}
	}
	if years > 0 {
		return float64(years)
	}

	current := time.Now().Year()
	longest := 0
	for _, match := range e.yearRangeRe.FindAllStringSubmatch(lowerText, -1) {
		start, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		end := current
		if v, err := strconv.Atoi(match[2]); err == nil {
			end = v
		}
		if span := end - start; span > longest && span < 60 {
			longest = span
		}
	}

	return float64(longest)
}

func (e *extractorService) findRequiredYears(lowerText string) float64 {
	for _, re := range e.requiredExpRes {
		if match := re.FindStringSubmatch(lowerText); match != nil {
			if v, err := strconv.Atoi(match[1]); err == nil {
				return float64(v)
			}
		}
	}
	return 0
}

func (e *extractorService) findEducation(lowerText string) []string {
	var education []string
	seen := make(map[string]struct{})

	for _, match := range e.eduPhraseRe.FindAllString(lowerText, -1) {
		phrase := strings.TrimSpace(match)
		if len(phrase) < 4 {
			continue
		}
		if _, ok := seen[phrase]; ok {
			continue
		}
		seen[phrase] = struct{}{}
		education = append(education, phrase)
	}

	return education
}

// containsWord reports whether skill occurs in text bounded by non-word
// characters, so "go" does not match inside "google".
func containsWord(text, skill string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], skill)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(skill)

		beforeOK := start == 0 || !isWordChar(rune(text[start-1]))
		afterOK := end == len(text) || !isWordChar(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func skillSetToSlice(set map[string]struct{}) []string {
	skills := make([]string, 0, len(set))
	for s := range set {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
