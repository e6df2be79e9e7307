// Package extraction turns raw resume text into a structured fact set:
// employers, job titles, date ranges, skills, and education. Extraction is
// pattern-based and never fails; malformed or too-short input produces an
// extraction with empty lists rather than an error.
package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tmori/talentmatch/internal/ingestion"
	"github.com/tmori/talentmatch/internal/lexicon"
	"github.com/tmori/talentmatch/internal/types"
)

// MinTextLength is the floor, after cleanup, below which input is treated as
// undetectable and yields an empty extraction.
const MinTextLength = 50

// Extractor applies the ordered pattern families over resume text.
// It is stateless after construction and safe for concurrent use.
type Extractor struct {
	skills        []string
	cloudServices []string
	commonTitles  []string
	titleLineRe   *regexp.Regexp
}

// New builds an Extractor over the embedded lexicon tables.
func New() *Extractor {
	return &Extractor{
		skills:        lexicon.Skills(),
		cloudServices: lexicon.CloudServices(),
		commonTitles:  lexicon.CommonTitles(),
		titleLineRe:   buildTitleLineRe(lexicon.RoleNouns()),
	}
}

// Extract produces a ResumeExtraction from raw resume text.
func (x *Extractor) Extract(text string) types.ResumeExtraction {
	return x.ExtractFile(text, "")
}

// ExtractFile is Extract with the originating file name recorded on the
// result.
func (x *Extractor) ExtractFile(text, fileName string) types.ResumeExtraction {
	cleaned := ingestion.CleanText(text)

	extraction := types.ResumeExtraction{
		ClientNames:   []string{},
		JobTitles:     []string{},
		RelevantDates: []string{},
		Skills:        []string{},
		Education:     []string{},
		ExtractedText: ingestion.Sample(cleaned),
		FileName:      fileName,
	}

	if len(cleaned) < MinTextLength {
		return extraction
	}

	extraction.ClientNames = x.extractEmployers(cleaned)
	extraction.JobTitles = x.extractTitles(cleaned)
	extraction.RelevantDates = x.extractDates(cleaned)
	extraction.Skills = x.extractSkills(cleaned)
	extraction.Education = x.extractEducation(cleaned)

	return extraction
}

// Employer pattern family, applied in order. Captures are unioned then
// deduplicated.
var employerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^[^\S\n]*client[^\S\n]*:[^\S\n]*(.+)$`),
	regexp.MustCompile(`\b(?i:work(?:ed|ing)?)[^\S\n]+(?i:for|at)[^\S\n]+([A-Z][A-Za-z0-9&.']*(?:[^\S\n]+[A-Z][A-Za-z0-9&.']*){0,4})`),
	regexp.MustCompile(`\b(?i:project|engagement|contract)[^\S\n]+(?i:with|for|at)[^\S\n]+([A-Z][A-Za-z0-9&.']*(?:[^\S\n]+[A-Z][A-Za-z0-9&.']*){0,4})`),
	regexp.MustCompile(`\b([A-Z][A-Za-z0-9&.']*(?:[^\S\n]+[A-Z&][A-Za-z0-9&.']*){0,4}[,]?[^\S\n]+(?:Inc|Corp|Corporation|LLC|Ltd|Group|Holdings|Company)\.?)(?:[^A-Za-z]|$)`),
}

// calendar months are the dominant false positive for the capitalized-name
// patterns above.
var monthTokens = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
	"nov": true, "dec": true, "present": true, "current": true,
}

func (x *Extractor) extractEmployers(text string) []string {
	found := make([]string, 0, 8)
	for _, re := range employerPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := tidyCapture(m[1])
			if name == "" || isMonthArtifact(name) {
				continue
			}
			found = append(found, name)
		}
	}

	unique := dedupeFold(found)

	// Longer names first so the most complete spelling wins when one name is
	// a substring of another downstream.
	sort.SliceStable(unique, func(i, j int) bool {
		return len(unique[i]) > len(unique[j])
	})

	return unique
}

func buildTitleLineRe(roleNouns []string) *regexp.Regexp {
	quoted := make([]string, 0, len(roleNouns))
	for _, noun := range roleNouns {
		quoted = append(quoted, regexp.QuoteMeta(noun))
	}
	// A title-case line ending in a seniority/role noun, e.g.
	// "Senior Software Engineer" on its own line.
	pattern := `(?m)^[^\S\n]*((?:[A-Z][A-Za-z+#./]*[^\S\n]+){0,4}(?:` + strings.Join(quoted, "|") + `))[^\S\n]*$`
	return regexp.MustCompile(pattern)
}

var explicitTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^[^\S\n]*(?:title|position|role)[^\S\n]*:[^\S\n]*(.+)$`),
	regexp.MustCompile(`\b(?i:as)[^\S\n]+(?i:an?)[^\S\n]+([A-Z][A-Za-z+#./-]*(?:[^\S\n]+[A-Z][A-Za-z+#./-]*){0,4})`),
}

func (x *Extractor) extractTitles(text string) []string {
	found := make([]string, 0, 8)

	for _, m := range x.titleLineRe.FindAllStringSubmatch(text, -1) {
		if title := tidyCapture(m[1]); title != "" {
			found = append(found, title)
		}
	}

	for _, re := range explicitTitlePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if title := tidyCapture(m[1]); title != "" {
				found = append(found, title)
			}
		}
	}

	// Membership test against the fixed common-title list.
	lower := strings.ToLower(text)
	for _, title := range x.commonTitles {
		if containsWord(lower, title) {
			found = append(found, titleCase(title))
		}
	}

	return dedupeFold(found)
}

var datePatterns = []*regexp.Regexp{
	// MM/YYYY - MM/YYYY or MM/YYYY - Present
	regexp.MustCompile(`(?i)\b(?:0?[1-9]|1[0-2])[^\S\n]*/[^\S\n]*(?:19|20)\d{2}[^\S\n]*(?:-|–|—|to)[^\S\n]*(?:(?:0?[1-9]|1[0-2])[^\S\n]*/[^\S\n]*(?:19|20)\d{2}|present|current|now)\b`),
	// Month YYYY - Month YYYY or Month YYYY - Present
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?[^\S\n]+(?:19|20)\d{2}[^\S\n]*(?:-|–|—|to)[^\S\n]*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?[^\S\n]+(?:19|20)\d{2}|present|current|now)\b`),
	// YYYY - YYYY or YYYY - Present
	regexp.MustCompile(`(?i)\b(?:19|20)\d{2}[^\S\n]*(?:-|–|—|to)[^\S\n]*(?:(?:19|20)\d{2}|present|current|now)\b`),
}

func (x *Extractor) extractDates(text string) []string {
	found := make([]string, 0, 8)
	for _, re := range datePatterns {
		for _, m := range re.FindAllString(text, -1) {
			found = append(found, normalizeSpace(m))
		}
	}
	return dedupeFold(found)
}

// tidyCapture trims a regex capture down to a presentable value.
func tidyCapture(s string) string {
	s = normalizeSpace(s)
	s = strings.Trim(s, " .,;:-")
	if len(s) < 2 || len(s) > 60 {
		return ""
	}
	return s
}

// isMonthArtifact reports whether a captured employer name is really a
// calendar token picked up from a date line.
func isMonthArtifact(name string) bool {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if !monthTokens[strings.Trim(f, ".")] {
			return false
		}
	}
	return true
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dedupeFold removes case-insensitive duplicates, keeping the first spelling
// and the original order.
func dedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}
	return unique
}

// containsWord reports whether term occurs in text on non-alphanumeric
// boundaries. Both arguments are expected lowercased.
func containsWord(text, term string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isAlnum(text[idx-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if len(f) > 0 {
			fields[i] = strings.ToUpper(f[:1]) + f[1:]
		}
	}
	return strings.Join(fields, " ")
}
