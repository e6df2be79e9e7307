// Package clientexp decides whether a candidate's employment history satisfies
// a job's client/industry requirement. Resolution is tiered: direct name
// match, partial name match, same-industry experience, then shared
// regulated-industry experience.
package clientexp

import (
	"fmt"
	"strings"

	"github.com/tmori/talentmatch/internal/industry"
)

// Tier scores. First matching tier wins.
const (
	scoreExactMatch     = 1.0
	scorePartialMatch   = 0.9
	scoreIndustryMatch  = 0.7
	scoreRegulatedMatch = 0.5
)

// Result describes how a candidate's history satisfies the job's client
// requirement.
type Result struct {
	HasExperience    bool     `json:"hasExperience"`
	ClientName       string   `json:"clientName,omitempty"`
	IndustryMatch    bool     `json:"industryMatch"`
	IndustryName     string   `json:"industryName,omitempty"`
	IsRegulated      bool     `json:"isRegulated"`
	DomainExperience []string `json:"domainExperience,omitempty"`
	Score            float64  `json:"score"`
}

// Summary renders the result as the one-line clientExperience string carried
// on match results and recommendations.
func (r Result) Summary() string {
	switch {
	case r.HasExperience && r.ClientName != "" && !r.IndustryMatch:
		return fmt.Sprintf("Direct experience with %s", r.ClientName)
	case r.HasExperience && r.IndustryMatch:
		return fmt.Sprintf("Related %s industry experience", r.IndustryName)
	case r.HasExperience:
		return "Regulated-industry experience"
	default:
		return "No direct client experience"
	}
}

// Scorer resolves client-experience tiers using the industry classifier.
type Scorer struct {
	classifier *industry.Classifier
}

// New builds a Scorer over the embedded industry table.
func New() *Scorer {
	return &Scorer{classifier: industry.New()}
}

// NewWithClassifier injects a classifier built over a custom table.
func NewWithClassifier(classifier *industry.Classifier) *Scorer {
	return &Scorer{classifier: classifier}
}

// Score resolves the job's client requirement against the candidate's
// employer history. A missing job client name or an empty history
// short-circuits to the no-match result.
func (s *Scorer) Score(jobClientName string, candidateClientNames []string) Result {
	jobNorm := industry.Normalize(jobClientName)
	if jobNorm == "" || len(candidateClientNames) == 0 {
		return Result{}
	}

	jobIndustry := s.classifier.IndustryOf(jobClientName)
	jobRegulated := s.classifier.IsRegulated(jobIndustry)

	// Tier 1: exact normalized name match.
	for _, name := range candidateClientNames {
		if industry.Normalize(name) == jobNorm {
			return Result{
				HasExperience:    true,
				ClientName:       name,
				IndustryName:     jobIndustry,
				IsRegulated:      jobRegulated,
				DomainExperience: s.classifier.DomainsOf(jobIndustry),
				Score:            scoreExactMatch,
			}
		}
	}

	// Tier 2: substring containment either direction (FIS vs FIS Global).
	for _, name := range candidateClientNames {
		norm := industry.Normalize(name)
		if norm == "" {
			continue
		}
		if containsEitherWay(jobNorm, norm) {
			return Result{
				HasExperience:    true,
				ClientName:       name,
				IndustryName:     jobIndustry,
				IsRegulated:      jobRegulated,
				DomainExperience: s.classifier.DomainsOf(jobIndustry),
				Score:            scorePartialMatch,
			}
		}
	}

	// Tier 3: same industry without a direct name match.
	if jobIndustry != "" {
		for _, name := range candidateClientNames {
			if s.classifier.IndustryOf(name) == jobIndustry {
				return Result{
					HasExperience:    true,
					ClientName:       name,
					IndustryMatch:    true,
					IndustryName:     jobIndustry,
					IsRegulated:      jobRegulated,
					DomainExperience: s.classifier.DomainsOf(jobIndustry),
					Score:            scoreIndustryMatch,
				}
			}
		}
	}

	// Tier 4: both sides regulated, industries differ.
	if jobRegulated {
		for _, name := range candidateClientNames {
			candIndustry := s.classifier.IndustryOf(name)
			if candIndustry != "" && s.classifier.IsRegulated(candIndustry) {
				return Result{
					HasExperience:    true,
					ClientName:       name,
					IndustryName:     candIndustry,
					IsRegulated:      true,
					DomainExperience: s.classifier.DomainsOf(candIndustry),
					Score:            scoreRegulatedMatch,
				}
			}
		}
	}

	return Result{IndustryName: jobIndustry, IsRegulated: jobRegulated}
}

func containsEitherWay(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
