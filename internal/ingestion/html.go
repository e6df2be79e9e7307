package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML extracts the visible text from an HTML job description.
// Script, style, and head content is discarded; block elements become line
// breaks so the result keeps enough structure for pattern extraction. Input
// that is not HTML comes back cleaned but otherwise unchanged.
func StripHTML(content string) string {
	if !strings.Contains(content, "<") {
		return CleanText(content)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Not parseable as HTML: treat as plain text.
		return CleanText(content)
	}

	doc.Find("script, style, noscript, head").Remove()

	var sb strings.Builder
	doc.Find("p, li, h1, h2, h3, h4, h5, h6, div, br, td, tr").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Clone().Children().Remove().End().Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Markup without block elements; fall back to the full document text.
		text = doc.Text()
	}

	return CleanText(text)
}
