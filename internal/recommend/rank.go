// Package recommend ranks candidates against a job by composing title, skill,
// location and client-experience sub-scores into one weighted recommendation
// per candidate. Ranking is pure: the same job and candidate list always
// yields the same ordered result.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tmori/talentmatch/internal/clientexp"
	"github.com/tmori/talentmatch/internal/types"
)

// Ranker scores and orders candidates for a job.
type Ranker struct {
	clientExp *clientexp.Scorer
}

// New builds a Ranker over the embedded industry table.
func New() *Ranker {
	return &Ranker{clientExp: clientexp.New()}
}

// NewWithClientExp injects a client-experience scorer, used by tests and by
// deployments with a custom industry table.
func NewWithClientExp(scorer *clientexp.Scorer) *Ranker {
	return &Ranker{clientExp: scorer}
}

// Rank scores every candidate against the job and returns recommendations in
// descending score order. Candidates whose composite falls below the cutoff
// are excluded entirely. Ties keep input order.
func (r *Ranker) Rank(job types.JobRequirement, candidates []types.CandidateProfile) []types.CandidateRecommendation {
	recs := make([]types.CandidateRecommendation, 0, len(candidates))
	for _, cand := range candidates {
		if rec, ok := r.score(job, cand); ok {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	return recs
}

// Score evaluates a single candidate. The boolean is false when the candidate
// falls below the ranking cutoff.
func (r *Ranker) Score(job types.JobRequirement, cand types.CandidateProfile) (types.CandidateRecommendation, bool) {
	return r.score(job, cand)
}

func (r *Ranker) score(job types.JobRequirement, cand types.CandidateProfile) (types.CandidateRecommendation, bool) {
	title := titleScore(job.Title, cand.Extraction.JobTitles)
	skill, skillMatches := skillScore(job, cand.Extraction.Skills)
	location, locationLabel := locationScore(job.Location, cand.City, cand.State)
	clientResult := r.clientExp.Score(job.ClientName, cand.Extraction.ClientNames)

	composite := weightTitle*title +
		weightSkill*skill +
		weightLocation*location +
		weightClientExp*clientResult.Score
	if composite < minComposite {
		return types.CandidateRecommendation{}, false
	}

	rec := types.CandidateRecommendation{
		CandidateID:   cand.ID,
		CandidateName: cand.Name,
		Location:      candidateLocation(cand),
		MatchScore:    int(math.Round(composite * 100)),
		MatchReasons:  buildReasons(job, title, location, locationLabel, skillMatches, clientResult),
		SkillMatches:  skillMatches,
		LocationMatch: locationLabel,
	}
	if clientResult.HasExperience {
		rec.ClientExperience = clientResult.Summary()
	}
	return rec, true
}

// buildReasons collects the sub-scores that cleared their informativeness
// thresholds: title > 0.6, any skill matches, location > 0.5, and any client
// experience.
func buildReasons(job types.JobRequirement, title, location float64, locationLabel string, skillMatches []string, clientResult clientexp.Result) []string {
	reasons := make([]string, 0, 4)
	if title > 0.6 {
		reasons = append(reasons, fmt.Sprintf("Title closely matches %q", job.Title))
	}
	if len(skillMatches) > 0 {
		reasons = append(reasons, fmt.Sprintf("Matches %d required skills: %s",
			len(skillMatches), strings.Join(capSkills(skillMatches, 5), ", ")))
	}
	if location > 0.5 {
		reasons = append(reasons, locationLabel)
	}
	if clientResult.HasExperience {
		reasons = append(reasons, clientResult.Summary())
	}
	return reasons
}

func candidateLocation(cand types.CandidateProfile) string {
	switch {
	case cand.City != "" && cand.State != "":
		return cand.City + ", " + cand.State
	case cand.City != "":
		return cand.City
	default:
		return cand.State
	}
}

func capSkills(skills []string, limit int) []string {
	if len(skills) > limit {
		return skills[:limit]
	}
	return skills
}
