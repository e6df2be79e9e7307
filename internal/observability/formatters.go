// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmori/talentmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs a human-readable summary of a resume extraction.
func (p *Printer) PrintExtraction(extraction *types.ResumeExtraction) {
	if extraction == nil {
		return
	}

	var sb strings.Builder

	if extraction.FileName != "" {
		sb.WriteString(fmt.Sprintf("File:      %s\n", extraction.FileName))
	}
	sb.WriteString(fmt.Sprintf("Employers: %d\n", len(extraction.ClientNames)))
	sb.WriteString(fmt.Sprintf("Titles:    %d\n", len(extraction.JobTitles)))
	sb.WriteString(fmt.Sprintf("Dates:     %d\n", len(extraction.RelevantDates)))
	sb.WriteString("\n")

	if len(extraction.ClientNames) > 0 {
		sb.WriteString("Employers:\n")
		writeItemList(&sb, extraction.ClientNames, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(extraction.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(extraction.Skills)))
		skills := strings.Join(extraction.Skills, ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", skills))
	}

	p.printBox("RESUME EXTRACTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the match score with its strongest signals.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %d / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Confidence: %d\n", result.Confidence))
	if result.ClientExperience != "" {
		sb.WriteString(fmt.Sprintf("Clients:    %s\n", result.ClientExperience))
	}
	sb.WriteString("\n")

	if len(result.MatchingSkills) > 0 {
		sb.WriteString("Matching skills:\n")
		writeItemList(&sb, result.MatchingSkills, maxItemsToShow)
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString("Missing skills:\n")
		writeItemList(&sb, result.MissingSkills, 3)
	}
	if len(result.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		writeItemList(&sb, result.Strengths, 3)
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the discrepancy finding for two resume versions.
func (p *Printer) PrintComparison(result *types.ComparisonResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Risk:     %s\n", strings.ToUpper(string(result.OverallRisk))))
	sb.WriteString(fmt.Sprintf("Changed:  %v\n", result.HasChanges))
	sb.WriteString("\n")

	if len(result.NewEmployers) > 0 {
		sb.WriteString("New employers:\n")
		writeItemList(&sb, result.NewEmployers, maxItemsToShow)
	}
	if len(result.RemovedEmployers) > 0 {
		sb.WriteString("Removed employers:\n")
		writeItemList(&sb, result.RemovedEmployers, maxItemsToShow)
	}
	if len(result.ChangedTitles) > 0 {
		sb.WriteString("Changed titles:\n")
		for i, change := range result.ChangedTitles {
			if i >= 3 {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ChangedTitles)-3))
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s: %q -> %q\n", change.Employer, change.Old, change.New))
		}
	}
	if len(result.ChangedDates) > 0 {
		sb.WriteString(fmt.Sprintf("Changed dates: %d\n", len(result.ChangedDates)))
	}

	p.printBox("VERSION COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top-ranked candidates for a job.
func (p *Printer) PrintRecommendations(recommendations []types.CandidateRecommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates above cutoff: %d\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.CandidateName))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", rec.MatchScore))
		if len(rec.SkillMatches) > 0 {
			skills := strings.Join(rec.SkillMatches, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(recommendations)-maxItemsToShow))
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// writeItemList appends up to limit bulleted items, with a trailing count of
// anything omitted.
func writeItemList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}
