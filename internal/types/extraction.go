// Package types provides the structured data contracts shared by the
// extraction, matching, comparison, and recommendation components. JSON field
// names are part of the wire contract consumed by the staffing application and
// must not change.
package types

// ResumeExtraction holds the structured facts pulled from raw resume text.
// An extraction is immutable once produced: a re-parse yields a new value and
// the old one is never mutated in place.
//
// ClientNames, JobTitles, and RelevantDates are positionally aligned where the
// source text allowed it: index i of each list refers to the same engagement
// when the resume listed them together.
type ResumeExtraction struct {
	ClientNames   []string `json:"clientNames"`
	JobTitles     []string `json:"jobTitles"`
	RelevantDates []string `json:"relevantDates"`
	Skills        []string `json:"skills"`
	Education     []string `json:"education"`
	ExtractedText string   `json:"extractedText"`
	FileName      string   `json:"fileName,omitempty"`
}

// IsEmpty reports whether the extraction carries no structured facts.
// This is the degraded result produced for malformed or too-short input.
func (e *ResumeExtraction) IsEmpty() bool {
	return len(e.ClientNames) == 0 &&
		len(e.JobTitles) == 0 &&
		len(e.RelevantDates) == 0 &&
		len(e.Skills) == 0 &&
		len(e.Education) == 0
}

// HasSkill reports whether the extraction contains the given skill,
// compared case-sensitively against the deduplicated skill list.
func (e *ResumeExtraction) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
