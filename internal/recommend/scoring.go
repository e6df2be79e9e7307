package recommend

import (
	"strings"
	"unicode"

	"github.com/tmori/talentmatch/internal/types"
)

// Composite weights and the cutoff below which a candidate is excluded from
// the ranked list. Calibrated alongside the heuristic score tiers.
const (
	weightTitle     = 0.25
	weightSkill     = 0.35
	weightLocation  = 0.15
	weightClientExp = 0.25

	minComposite = 0.4

	// Client-focus skills count double when matched.
	clientFocusWeight = 2.0
)

// Location sub-score grid.
const (
	locScoreRemote        = 1.0
	locScoreSameCity      = 1.0
	locScoreSameStateHyb  = 0.9
	locScoreSameStateOn   = 0.7
	locScoreDiffCityHyb   = 0.5
	locScoreOnsiteMiss    = 0.1
	locScoreIndeterminate = 0.2
)

// titleScore returns the best similarity between the job title and any of the
// candidate's extracted titles: exact 1.0, containment either direction 0.8,
// otherwise the word-overlap ratio against the job title's words.
func titleScore(jobTitle string, candidateTitles []string) float64 {
	jobNorm := strings.ToLower(strings.TrimSpace(jobTitle))
	if jobNorm == "" || len(candidateTitles) == 0 {
		return 0
	}
	jobWords := fieldSet(jobNorm)

	best := 0.0
	for _, title := range candidateTitles {
		norm := strings.ToLower(strings.TrimSpace(title))
		if norm == "" {
			continue
		}
		var s float64
		switch {
		case norm == jobNorm:
			s = 1.0
		case strings.Contains(jobNorm, norm) || strings.Contains(norm, jobNorm):
			s = 0.8
		default:
			common := 0
			for w := range fieldSet(norm) {
				if jobWords[w] {
					common++
				}
			}
			s = float64(common) / float64(len(jobWords))
		}
		if s > best {
			best = s
		}
	}
	return best
}

// skillScore measures how much of the job's demand the candidate's extracted
// skills cover. Skills found among the job's client-focus terms count double.
// The denominator is an estimate of how many skills a description of this
// length is really asking for, so long postings don't drown short skill lists.
// Returns the score and the skills that matched, in candidate order.
func skillScore(job types.JobRequirement, candidateSkills []string) (float64, []string) {
	if len(candidateSkills) == 0 {
		return 0, []string{}
	}

	descLower := strings.ToLower(job.Description)
	focus := make(map[string]bool, len(job.ClientFocus))
	for _, f := range job.ClientFocus {
		focus[strings.ToLower(strings.TrimSpace(f))] = true
	}

	points := 0.0
	matches := make([]string, 0, len(candidateSkills))
	for _, skill := range candidateSkills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		switch {
		case focus[s]:
			points += clientFocusWeight
			matches = append(matches, skill)
		case containsWord(descLower, s):
			points++
			matches = append(matches, skill)
		}
	}

	score := points / float64(estimateRequiredSkills(job.Description))
	if score > 1.0 {
		score = 1.0
	}
	return score, matches
}

// estimateRequiredSkills guesses the demand of a job description from its
// length: roughly one skill per forty words, clamped to [3, 12].
func estimateRequiredSkills(description string) int {
	est := len(strings.Fields(description)) / 40
	if est < 3 {
		return 3
	}
	if est > 12 {
		return 12
	}
	return est
}

// locationScore applies the fixed compatibility grid. A remote job is 1.0 for
// everyone; the label is what gets surfaced as locationMatch.
func locationScore(loc types.JobLocation, candCity, candState string) (float64, string) {
	if loc.JobType == types.JobTypeRemote {
		return locScoreRemote, "Remote role - location flexible"
	}

	jobCity := strings.ToLower(strings.TrimSpace(loc.City))
	jobState := strings.ToLower(strings.TrimSpace(loc.State))
	city := strings.ToLower(strings.TrimSpace(candCity))
	state := strings.ToLower(strings.TrimSpace(candState))

	switch {
	case jobCity != "" && city == jobCity:
		return locScoreSameCity, "Located in " + loc.City
	case jobState != "" && state == jobState:
		if loc.JobType == types.JobTypeHybrid {
			return locScoreSameStateHyb, "Same state (" + loc.State + ")"
		}
		return locScoreSameStateOn, "Same state (" + loc.State + ")"
	case loc.JobType == types.JobTypeHybrid && city != "":
		return locScoreDiffCityHyb, "Different city, hybrid schedule"
	case loc.JobType == types.JobTypeOnsite && city != "":
		return locScoreOnsiteMiss, "Outside onsite location"
	default:
		return locScoreIndeterminate, "Location unknown"
	}
}

// containsWord reports whether needle occurs in haystack bounded by
// non-alphanumeric characters on both sides.
func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		leftOK := idx == 0 || !isAlnum(rune(haystack[idx-1]))
		rightOK := end == len(haystack) || !isAlnum(rune(haystack[end]))
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func fieldSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, f := range strings.Fields(text) {
		set[f] = true
	}
	return set
}
