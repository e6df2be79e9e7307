// Package matching implements the deterministic local scorer comparing resume
// text against job text. It is the always-available fallback behind the
// external analyzer: same inputs always produce the same MatchResult, with no
// randomness and no network access.
package matching

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tmori/talentmatch/internal/ingestion"
	"github.com/tmori/talentmatch/internal/lexicon"
	"github.com/tmori/talentmatch/internal/types"
)

// Score tiers are business-calibrated constants tuned to recruiter
// expectations. Preserve them; do not re-derive.
const (
	scoreBase  = 75
	scoreTier1 = 80 // match rate > 0.25
	scoreTier2 = 85 // match rate > 0.50
	scoreTier3 = 90 // match rate > 0.70
	scoreTier4 = 95 // match rate > 0.90

	// The no-job-skills branch maps word overlap into [overlapFloor, overlapCap].
	overlapFloor = 75
	overlapCap   = 95

	// minResumeLength mirrors the extractor's floor: shorter resumes score 0.
	minResumeLength = 50

	maxTechnicalGaps = 5
	maxListedSkills  = 5
)

var (
	capitalizedTokenRe = regexp.MustCompile(`\b[A-Z][A-Za-z0-9+#]{2,}\b`)
	compoundTokenRe    = regexp.MustCompile(`\b[A-Za-z0-9+#]+(?:[.-][A-Za-z0-9+#]+)+\b`)
)

// autoTermStopWords keeps capitalized prose words (The, With, Our...) out of
// the auto-extracted vocabulary.
var autoTermStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "our": true, "your": true, "this": true, "that": true,
	"will": true, "have": true, "from": true, "who": true, "what": true,
	"about": true, "join": true, "team": true, "role": true, "work": true,
	"must": true, "plus": true, "years": true, "strong": true, "senior": true,
	"junior": true, "experience": true, "required": true, "preferred": true,
	"requirements": true, "responsibilities": true, "qualifications": true,
	"knowledge": true, "ability": true, "skills": true, "including": true,
}

// Matcher is the heuristic scorer. Stateless after construction; safe for
// concurrent use.
type Matcher struct {
	lexiconTerms []string
}

// New builds a Matcher over the embedded skill lexicon.
func New() *Matcher {
	return &Matcher{lexiconTerms: lexicon.Skills()}
}

// Match scores resumeText against jobText. Pure and deterministic; never
// returns an error — insufficient input degrades to a zero-score result.
func (m *Matcher) Match(resumeText, jobText string) types.MatchResult {
	resume := ingestion.CleanText(resumeText)
	job := ingestion.CleanText(jobText)

	if len(resume) < minResumeLength || job == "" {
		return insufficientInputResult()
	}

	resumeLower := strings.ToLower(resume)
	jobLower := strings.ToLower(job)

	vocabulary := m.buildVocabulary(job)

	matching := make([]string, 0, 16)
	missing := make([]string, 0, 16)
	jobSkillsCount := 0
	for _, term := range vocabulary {
		inJob := strings.Contains(jobLower, term)
		if !inJob {
			continue
		}
		jobSkillsCount++
		if strings.Contains(resumeLower, term) {
			matching = append(matching, term)
		} else {
			missing = append(missing, term)
		}
	}

	var score, confidence int
	if jobSkillsCount == 0 {
		score = wordOverlapScore(resumeLower, jobLower)
		confidence = 40
	} else {
		matchRate := float64(len(matching)) / float64(jobSkillsCount)
		score = tieredScore(matchRate)
		confidence = 50 + int(matchRate*40)
	}

	result := types.MatchResult{
		Score:          score,
		Strengths:      buildStrengths(matching, score),
		Weaknesses:     buildWeaknesses(missing),
		Suggestions:    buildSuggestions(missing),
		TechnicalGaps:  buildTechnicalGaps(missing),
		MatchingSkills: matching,
		MissingSkills:  missing,
		Confidence:     confidence,
	}
	result.ClampScores()
	return result
}

// buildVocabulary unions the curated lexicon with terms auto-extracted from
// the job text, preserving a stable order: lexicon first, then sorted auto
// terms.
func (m *Matcher) buildVocabulary(jobText string) []string {
	seen := make(map[string]bool, len(m.lexiconTerms))
	vocabulary := make([]string, 0, len(m.lexiconTerms)+16)
	for _, term := range m.lexiconTerms {
		if !seen[term] {
			seen[term] = true
			vocabulary = append(vocabulary, term)
		}
	}

	auto := make([]string, 0, 16)
	for _, tok := range capitalizedTokenRe.FindAllString(jobText, -1) {
		auto = append(auto, strings.ToLower(tok))
	}
	for _, tok := range compoundTokenRe.FindAllString(jobText, -1) {
		if len(tok) > 2 {
			auto = append(auto, strings.ToLower(tok))
		}
	}
	sort.Strings(auto)

	for _, term := range auto {
		if seen[term] || autoTermStopWords[term] {
			continue
		}
		seen[term] = true
		vocabulary = append(vocabulary, term)
	}

	return vocabulary
}

// tieredScore applies the thresholds in ascending order; the last tier that
// matches stands.
func tieredScore(matchRate float64) int {
	score := scoreBase
	if matchRate > 0.25 {
		score = scoreTier1
	}
	if matchRate > 0.5 {
		score = scoreTier2
	}
	if matchRate > 0.7 {
		score = scoreTier3
	}
	if matchRate > 0.9 {
		score = scoreTier4
	}
	return score
}

// wordOverlapScore handles job descriptions with no recognizable technical
// vocabulary: overlap of words longer than 3 characters, measured against the
// job's word set, mapped into [overlapFloor, overlapCap].
func wordOverlapScore(resumeLower, jobLower string) int {
	jobWords := wordSet(jobLower)
	if len(jobWords) == 0 {
		return overlapFloor
	}
	resumeWords := wordSet(resumeLower)

	common := 0
	for w := range jobWords {
		if resumeWords[w] {
			common++
		}
	}

	ratio := float64(common) / float64(len(jobWords))
	score := overlapFloor + int(ratio*float64(overlapCap-overlapFloor))
	if score > overlapCap {
		score = overlapCap
	}
	return score
}

func wordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, f := range strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	}) {
		if len(f) > 3 {
			words[f] = true
		}
	}
	return words
}

func insufficientInputResult() types.MatchResult {
	return types.MatchResult{
		Score:       0,
		Strengths:   []string{},
		Weaknesses:  []string{"Not enough resume content to evaluate against the job description"},
		Suggestions: []string{"Provide a complete resume with work history and skills"},
		Confidence:  0,
	}
}

func buildStrengths(matching []string, score int) []string {
	strengths := make([]string, 0, 2)
	if len(matching) > 0 {
		strengths = append(strengths,
			fmt.Sprintf("Demonstrated experience with %s", joinSkills(matching, maxListedSkills)))
	}
	if score >= scoreTier2 {
		strengths = append(strengths, "Technical profile aligns closely with the job requirements")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "General professional background may transfer to this role")
	}
	return strengths
}

func buildWeaknesses(missing []string) []string {
	if len(missing) == 0 {
		return []string{}
	}
	return []string{
		fmt.Sprintf("No evident experience with %s", joinSkills(missing, maxListedSkills)),
	}
}

func buildSuggestions(missing []string) []string {
	if len(missing) == 0 {
		return []string{"Highlight recent project outcomes relevant to this position"}
	}
	return []string{
		fmt.Sprintf("Highlight any exposure to %s, even from side projects or training", joinSkills(missing, 3)),
	}
}

func buildTechnicalGaps(missing []string) []string {
	gaps := make([]string, 0, maxTechnicalGaps)
	for _, skill := range missing {
		if len(gaps) == maxTechnicalGaps {
			break
		}
		gaps = append(gaps, fmt.Sprintf("Job requires %s which is not mentioned in the resume", skill))
	}
	return gaps
}

func joinSkills(skills []string, limit int) string {
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return strings.Join(skills, ", ")
}
