// Package comparison diffs two extraction snapshots of the same candidate's
// resume and grades the discrepancy risk. Resubmitted resumes that drop
// employers, gain employers, or shift employment dates are the classic
// fabrication signals this package exists to catch.
package comparison

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tmori/talentmatch/internal/types"
)

// Risk escalation thresholds on the changed-dates diff.
const (
	datesChangedHigh   = 2 // more than this many changed dates is high risk
	datesChangedMedium = 1
)

// dayMonthRe matches numeric dates so ambiguous day/month ordering can be
// normalized before comparison.
var dayMonthRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

// Compare diffs the previous extraction against the current one. Removed
// employers are relative to previous. Pure: no shared state, safe to call
// concurrently.
func Compare(previous, current types.ResumeExtraction) types.ComparisonResult {
	prevIndex := employerIndex(previous.ClientNames)
	currIndex := employerIndex(current.ClientNames)

	newEmployers := make([]string, 0)
	for i, name := range current.ClientNames {
		key := employerKey(name)
		if key == "" || currIndex[key] != i {
			continue // blank or duplicate spelling
		}
		if _, ok := prevIndex[key]; !ok {
			newEmployers = append(newEmployers, name)
		}
	}

	removedEmployers := make([]string, 0)
	changedTitles := make([]types.EmployerChange, 0)
	changedDates := make([]types.EmployerChange, 0)
	for i, name := range previous.ClientNames {
		key := employerKey(name)
		if key == "" || prevIndex[key] != i {
			continue
		}
		ci, ok := currIndex[key]
		if !ok {
			removedEmployers = append(removedEmployers, name)
			continue
		}

		oldTitle := valueAt(previous.JobTitles, i)
		newTitle := valueAt(current.JobTitles, ci)
		if oldTitle != "" && newTitle != "" && !strings.EqualFold(oldTitle, newTitle) {
			changedTitles = append(changedTitles, types.EmployerChange{
				Employer: name, Old: oldTitle, New: newTitle,
			})
		}

		oldDate := valueAt(previous.RelevantDates, i)
		newDate := valueAt(current.RelevantDates, ci)
		if oldDate != "" && newDate != "" && normalizeDates(oldDate) != normalizeDates(newDate) {
			changedDates = append(changedDates, types.EmployerChange{
				Employer: name, Old: oldDate, New: newDate,
			})
		}
	}

	hasChanges := len(newEmployers) > 0 || len(removedEmployers) > 0 ||
		len(changedTitles) > 0 || len(changedDates) > 0

	return types.ComparisonResult{
		HasChanges:       hasChanges,
		NewEmployers:     newEmployers,
		RemovedEmployers: removedEmployers,
		ChangedDates:     changedDates,
		ChangedTitles:    changedTitles,
		OverallRisk:      riskOf(hasChanges, newEmployers, removedEmployers, changedDates),
	}
}

// riskOf applies the escalation policy: a simultaneous removal and addition
// looks like a wholesale chronology swap and is always high risk, as is a
// cluster of shifted dates.
func riskOf(hasChanges bool, newEmployers, removedEmployers []string, changedDates []types.EmployerChange) types.RiskLevel {
	switch {
	case !hasChanges:
		return types.RiskNone
	case len(removedEmployers) > 0 && len(newEmployers) > 0:
		return types.RiskHigh
	case len(changedDates) > datesChangedHigh:
		return types.RiskHigh
	case len(removedEmployers) > 0 || len(changedDates) > datesChangedMedium:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// employerIndex maps each employer's identity key to its first position.
func employerIndex(names []string) map[string]int {
	index := make(map[string]int, len(names))
	for i, name := range names {
		key := employerKey(name)
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}
	return index
}

// employerKey folds case and surrounding whitespace so respellings of the
// same employer do not register as a removal plus an addition.
func employerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// normalizeDates rewrites ambiguous numeric dates before comparison: when the
// first number cannot be a month, it is treated as a day and swapped, so
// 25/03/2021 and 03/25/2021 compare equal.
func normalizeDates(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return dayMonthRe.ReplaceAllStringFunc(s, func(m string) string {
		parts := dayMonthRe.FindStringSubmatch(m)
		first, _ := strconv.Atoi(parts[1])
		second, _ := strconv.Atoi(parts[2])
		if first > 12 && second <= 12 {
			parts[1], parts[2] = parts[2], parts[1]
		}
		return strings.TrimLeft(parts[1], "0") + "/" + strings.TrimLeft(parts[2], "0") + "/" + parts[3]
	})
}

func valueAt(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}
