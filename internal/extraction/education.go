package extraction

import (
	"regexp"
)

var educationPatterns = []*regexp.Regexp{
	// Degree keyword plus optional field of study.
	regexp.MustCompile(`\b((?i:Bachelor(?:'s)?|Master(?:'s)?|Doctorate)(?:[^\S\n]+(?i:of|in)[^\S\n]+[A-Z][A-Za-z& ]{2,40})?)`),
	regexp.MustCompile(`\b(Ph\.?D\.?(?:[^\S\n]+(?i:in)[^\S\n]+[A-Z][A-Za-z& ]{2,40})?)`),
	regexp.MustCompile(`\b((?:B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|M\.?B\.?A\.?|B\.?Tech|M\.?Tech)(?:[^\S\n]+(?i:in)[^\S\n]+[A-Z][A-Za-z& ]{2,40})?)\b`),
	// "<Name> University/College/Institute".
	regexp.MustCompile(`\b([A-Z][A-Za-z.&'\- ]{2,40}[^\S\n](?:University|College|Institute)(?:[^\S\n]of[^\S\n][A-Z][A-Za-z ]{2,30})?)`),
	regexp.MustCompile(`\b(University[^\S\n]of[^\S\n][A-Z][A-Za-z ]{2,30})`),
}

var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b((?:AWS|Azure|Google|Oracle|Salesforce)?[^\S\n]?Certified[^\S\n][A-Z][A-Za-z0-9+#\- ]{2,50})`),
	regexp.MustCompile(`\b(PMP|CISSP|CCNA|CCNP|CKA|CKAD|CSM|CSPO|OCJP|OCP|MCSA|MCSE|RHCE|CEH)\b`),
}

// extractEducation collects degrees, schools, and certifications.
func (x *Extractor) extractEducation(text string) []string {
	found := make([]string, 0, 8)

	for _, re := range educationPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if entry := tidyCapture(m[1]); entry != "" {
				found = append(found, entry)
			}
		}
	}

	for _, re := range certificationPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if entry := tidyCapture(m[1]); entry != "" {
				found = append(found, entry)
			}
		}
	}

	return dedupeFold(found)
}
