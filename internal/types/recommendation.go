package types

// CandidateRecommendation is one ranked entry produced per (candidate, job)
// pair. Recommendations are recomputed on demand and never persisted.
type CandidateRecommendation struct {
	CandidateID      string   `json:"candidateId"`
	CandidateName    string   `json:"candidateName"`
	Location         string   `json:"location"`
	MatchScore       int      `json:"matchScore"`
	MatchReasons     []string `json:"matchReasons"`
	SkillMatches     []string `json:"skillMatches"`
	LocationMatch    string   `json:"locationMatch"`
	ClientExperience string   `json:"clientExperience,omitempty"`
}
