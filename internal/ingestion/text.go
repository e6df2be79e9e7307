// Package ingestion prepares raw resume and job-description text for the
// extraction and matching components. Documents arrive already decoded from
// PDF/Word by an upstream collaborator; this package only normalizes
// whitespace and strips markup.
package ingestion

import (
	"regexp"
	"strings"
)

// SampleLength is the number of characters of cleaned text kept as the
// extractedText sample on a ResumeExtraction.
const SampleLength = 500

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	multiBlankRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw text while preserving line structure: CRLF to LF,
// collapsed runs of spaces, at most two consecutive blank lines, trimmed ends.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses interior whitespace but keeps bullet markers and
// leading indentation, which the title extractor relies on.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	content := multiSpaceRe.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// Sample returns the first SampleLength characters of text, cut on a rune
// boundary.
func Sample(text string) string {
	runes := []rune(text)
	if len(runes) <= SampleLength {
		return text
	}
	return string(runes[:SampleLength])
}
