package types

// MatchResult is the scored comparison between one resume and one job
// description. Score and Confidence are clamped to [0,100].
//
// Invariants: MatchingSkills is a subset of the skills present in both texts;
// MissingSkills is a subset of the job's skills absent from the resume.
type MatchResult struct {
	Score            int      `json:"score"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Suggestions      []string `json:"suggestions"`
	TechnicalGaps    []string `json:"technicalGaps,omitempty"`
	MatchingSkills   []string `json:"matchingSkills,omitempty"`
	MissingSkills    []string `json:"missingSkills,omitempty"`
	ClientExperience string   `json:"clientExperience,omitempty"`
	Confidence       int      `json:"confidence,omitempty"`
}

// ClampScores forces Score and Confidence into [0,100].
// External analyzer responses are clamped before being merged.
func (m *MatchResult) ClampScores() {
	m.Score = clampPercent(m.Score)
	m.Confidence = clampPercent(m.Confidence)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
