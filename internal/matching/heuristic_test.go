package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactResume = `Full stack developer with 5 years experience with React and Node.js,
building single page applications and REST services for retail clients.`

const reactJob = `We need a frontend-leaning engineer. Required: React, Node.js, AWS.
You will build and operate customer-facing services.`

func TestMatch_ReactNodeScenario(t *testing.T) {
	result := New().Match(reactResume, reactJob)

	assert.Contains(t, result.MatchingSkills, "react")
	assert.Contains(t, result.MatchingSkills, "node")
	assert.Contains(t, result.MissingSkills, "aws")
	assert.GreaterOrEqual(t, result.Score, 80)
}

func TestMatch_Deterministic(t *testing.T) {
	m := New()
	first := m.Match(reactResume, reactJob)
	second := m.Match(reactResume, reactJob)
	assert.Equal(t, first, second)
}

func TestMatch_MatchingSkillsPresentInBothTexts(t *testing.T) {
	result := New().Match(reactResume, reactJob)

	resumeLower := strings.ToLower(reactResume)
	jobLower := strings.ToLower(reactJob)
	require.NotEmpty(t, result.MatchingSkills)
	for _, skill := range result.MatchingSkills {
		assert.Contains(t, resumeLower, skill)
		assert.Contains(t, jobLower, skill)
	}
}

func TestMatch_MissingSkillsAbsentFromResume(t *testing.T) {
	result := New().Match(reactResume, reactJob)

	resumeLower := strings.ToLower(reactResume)
	for _, skill := range result.MissingSkills {
		assert.NotContains(t, resumeLower, skill)
	}
}

func TestMatch_ScoreBoundsForAnyInput(t *testing.T) {
	m := New()
	cases := [][2]string{
		{"", ""},
		{reactResume, ""},
		{"", reactJob},
		{reactResume, reactJob},
		{strings.Repeat("x", 200), strings.Repeat("y", 200)},
	}
	for _, c := range cases {
		result := m.Match(c[0], c[1])
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		assert.GreaterOrEqual(t, result.Confidence, 0)
		assert.LessOrEqual(t, result.Confidence, 100)
	}
}

func TestMatch_ShortResumeScoresZero(t *testing.T) {
	result := New().Match("too short", reactJob)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Confidence)
	assert.Empty(t, result.MatchingSkills)
}

func TestMatch_NoTechnicalVocabularyFallsBackToWordOverlap(t *testing.T) {
	resume := `An office coordinator handling scheduling, correspondence, filing,
supplier coordination and general administrative support across departments.`
	job := `seeking an office coordinator handling scheduling, correspondence,
filing and general administrative support duties.`

	result := New().Match(resume, job)

	// The calibrated no-vocabulary branch floors at 75 and caps at 95.
	assert.GreaterOrEqual(t, result.Score, 75)
	assert.LessOrEqual(t, result.Score, 95)
}

func TestMatch_TierBoundaries(t *testing.T) {
	assert.Equal(t, scoreBase, tieredScore(0.0))
	assert.Equal(t, scoreBase, tieredScore(0.25))
	assert.Equal(t, scoreTier1, tieredScore(0.26))
	assert.Equal(t, scoreTier1, tieredScore(0.5))
	assert.Equal(t, scoreTier2, tieredScore(0.51))
	assert.Equal(t, scoreTier3, tieredScore(0.71))
	assert.Equal(t, scoreTier4, tieredScore(0.91))
	assert.Equal(t, scoreTier4, tieredScore(1.0))
}

func TestMatch_TechnicalGapsCappedAtFive(t *testing.T) {
	job := `Requirements: java, python, golang, ruby, scala, kotlin, rust, php,
docker, kubernetes, terraform, ansible and jenkins experience.`
	resume := `A generalist administrator with a decade of desktop support and
hardware provisioning experience across several offices.`

	result := New().Match(resume, job)

	assert.LessOrEqual(t, len(result.TechnicalGaps), 5)
	assert.NotEmpty(t, result.MissingSkills)
}

func TestMatch_NarrativeFieldsPopulated(t *testing.T) {
	result := New().Match(reactResume, reactJob)

	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Weaknesses)
	assert.NotEmpty(t, result.Suggestions)
	for _, gap := range result.TechnicalGaps {
		assert.Contains(t, gap, "Job requires")
	}
}

func TestMatch_PerfectOverlapHitsTopTier(t *testing.T) {
	job := "Must have react experience building production interfaces for clients."
	resume := `Five years of react experience building production interfaces and
component libraries for enterprise clients across several industries.`

	result := New().Match(resume, job)

	assert.Equal(t, scoreTier4, result.Score)
	assert.Empty(t, result.MissingSkills)
}
