package extraction

import (
	"regexp"
	"strings"
)

var versionSuffixRe = `[^\S\n]+v?\d+(?:\.\d+)*`

// extractSkills runs the word-boundary membership test against the curated
// lexicon, picks up "<skill> <version>" pairs, and matches the structured
// cloud-service acronyms case-sensitively.
func (x *Extractor) extractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 16)

	for _, term := range x.skills {
		if !containsWord(lower, term) {
			continue
		}
		found = append(found, term)

		// Versioned mention, e.g. "java 11" or "react 18.2".
		re := regexp.MustCompile(`(?i)(` + boundaryQuote(term) + versionSuffixRe + `)`)
		if m := re.FindString(text); m != "" {
			found = append(found, strings.ToLower(normalizeSpace(m)))
		}
	}

	// Cloud-service acronyms are matched against the original casing: "s3"
	// in prose is too ambiguous, "S3" is not.
	for _, svc := range x.cloudServices {
		if containsToken(text, svc) {
			found = append(found, svc)
		}
	}

	return dedupeFold(found)
}

// boundaryQuote quotes a lexicon term for embedding in a larger pattern.
func boundaryQuote(term string) string {
	return regexp.QuoteMeta(term)
}

// containsToken is containsWord without case folding.
func containsToken(text, token string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], token)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(token)
		beforeOK := idx == 0 || !isAlnum(text[idx-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}
