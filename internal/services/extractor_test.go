package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResumeSkills(t *testing.T) {
	extractor := NewExtractorService()

	t.Run("detects catalog skills and variants", func(t *testing.T) {
		profile := extractor.ParseResume(
			"Senior engineer skilled in Python, Django and K8s. Built Go services. PostgreSQL and RESTful design.")

		assert.Contains(t, profile.Skills, "python")
		assert.Contains(t, profile.Skills, "django")
		assert.Contains(t, profile.Skills, "kubernetes")
		assert.Contains(t, profile.Skills, "go")
		assert.Contains(t, profile.Skills, "postgresql")
		assert.Contains(t, profile.Skills, "rest api")
	})

	t.Run("maps spelling variants to canonical names", func(t *testing.T) {
		profile := extractor.ParseResume("Deployed to Amazon Web Services using k8s and node")

		assert.Contains(t, profile.Skills, "aws")
		assert.Contains(t, profile.Skills, "kubernetes")
		assert.Contains(t, profile.Skills, "node.js")
		assert.NotContains(t, profile.Skills, "k8s")
	})

	t.Run("respects word boundaries", func(t *testing.T) {
		profile := extractor.ParseResume("I search on google all day")

		assert.NotContains(t, profile.Skills, "go")
	})

	t.Run("skills come back sorted and unique", func(t *testing.T) {
		profile := extractor.ParseResume("python python java python java")

		assert.Equal(t, []string{"java", "python"}, profile.Skills)
	})
}

func TestParseResumeExperience(t *testing.T) {
	extractor := NewExtractorService()

	t.Run("explicit years phrase", func(t *testing.T) {
		profile := extractor.ParseResume("5+ years of experience building backend systems")
		assert.Equal(t, 5.0, profile.ExperienceYears)
	})

	t.Run("keeps the largest explicit mention", func(t *testing.T) {
		profile := extractor.ParseResume(
			"3 years of experience in frontend. 7 years of experience in backend.")
		assert.Equal(t, 7.0, profile.ExperienceYears)
	})

	t.Run("falls back to employment date ranges", func(t *testing.T) {
		profile := extractor.ParseResume(
			"Software Engineer, Acme Corp 2015 - 2019\nDeveloper, Beta Inc 2010-2016")
		assert.Equal(t, 6.0, profile.ExperienceYears)
	})

	t.Run("no mention means zero", func(t *testing.T) {
		profile := extractor.ParseResume("Enthusiastic junior developer")
		assert.Equal(t, 0.0, profile.ExperienceYears)
	})
}

func TestParseResumeEducation(t *testing.T) {
	extractor := NewExtractorService()

	profile := extractor.ParseResume("Bachelor of Science in Computer Science, MIT")

	require.NotEmpty(t, profile.Education)
	assert.Equal(t, "bachelor of science in computer science", profile.Education[0])
}

func TestParseResumeSummary(t *testing.T) {
	extractor := NewExtractorService()

	t.Run("long text is truncated", func(t *testing.T) {
		profile := extractor.ParseResume(strings.Repeat("x", 800))

		assert.Len(t, profile.Summary, 503)
		assert.True(t, strings.HasSuffix(profile.Summary, "..."))
	})

	t.Run("truncation never splits a multibyte rune", func(t *testing.T) {
		profile := extractor.ParseResume("x" + strings.Repeat("é", 600))

		assert.True(t, utf8.ValidString(profile.Summary))
		assert.True(t, strings.HasSuffix(profile.Summary, "..."))
	})
}

func TestParseJobDescription(t *testing.T) {
	extractor := NewExtractorService()

	t.Run("splits required and preferred sections", func(t *testing.T) {
		req := extractor.ParseJobDescription(
			"Requirements:\n" +
				"- 4+ years of experience with Python and Django\n" +
				"- PostgreSQL\n" +
				"Nice to have:\n" +
				"- Docker and Kubernetes\n")

		assert.Contains(t, req.RequiredSkills, "python")
		assert.Contains(t, req.RequiredSkills, "django")
		assert.Contains(t, req.RequiredSkills, "postgresql")
		assert.NotContains(t, req.RequiredSkills, "docker")

		assert.Equal(t, []string{"docker", "kubernetes"}, req.PreferredSkills)
		assert.Equal(t, 4.0, req.ExperienceRequired)
	})

	t.Run("required heading flips a preferred section back", func(t *testing.T) {
		req := extractor.ParseJobDescription(
			"Preferred:\n- AWS\nRequired qualifications:\n- Java\n")

		assert.Equal(t, []string{"aws"}, req.PreferredSkills)
		assert.Contains(t, req.RequiredSkills, "java")
	})

	t.Run("minimum years phrasing", func(t *testing.T) {
		req := extractor.ParseJobDescription("Minimum of 3 years in backend development")
		assert.Equal(t, 3.0, req.ExperienceRequired)
	})

	t.Run("education requirement", func(t *testing.T) {
		req := extractor.ParseJobDescription("Master's degree in a quantitative field required")

		require.NotEmpty(t, req.EducationRequired)
		assert.Contains(t, req.EducationRequired[0], "master")
	})
}
