package types

// RiskLevel is the coarse severity label for resume-discrepancy findings.
type RiskLevel string

// Risk levels in escalating order.
const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// EmployerChange records a changed date range or job title for an employer
// present in both resume versions.
type EmployerChange struct {
	Employer string `json:"employer"`
	Old      string `json:"old"`
	New      string `json:"new"`
}

// ComparisonResult is the diff between two ResumeExtraction snapshots of the
// same candidate. Removed is always relative to the previous snapshot. The
// result is derived purely from the two snapshots and has no lifecycle of its
// own.
type ComparisonResult struct {
	HasChanges       bool             `json:"hasChanges"`
	NewEmployers     []string         `json:"newEmployers"`
	RemovedEmployers []string         `json:"removedEmployers"`
	ChangedDates     []EmployerChange `json:"changedDates"`
	ChangedTitles    []EmployerChange `json:"changedTitles"`
	OverallRisk      RiskLevel        `json:"overallRisk"`
}
