package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	result := CleanText(input)
	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestCleanText_CollapsesSpaces(t *testing.T) {
	input := "Senior   Java    Developer"
	assert.Equal(t, "Senior Java Developer", CleanText(input))
}

func TestCleanText_PreservesIndentation(t *testing.T) {
	input := "Experience:\n  - Built services"
	result := CleanText(input)
	assert.Contains(t, result, "  - Built services")
}

func TestCleanText_LimitsBlankLines(t *testing.T) {
	input := "a\n\n\n\n\nb"
	assert.Equal(t, "a\n\nb", CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestSample_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short", Sample("short"))
}

func TestSample_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", SampleLength*2)
	sample := Sample(long)
	assert.Len(t, sample, SampleLength)
}

func TestStripHTML_PlainTextPassthrough(t *testing.T) {
	plain := "Senior Developer needed. React and Node.js required."
	assert.Equal(t, plain, StripHTML(plain))
}

func TestStripHTML_RemovesMarkup(t *testing.T) {
	html := `<html><head><title>Job</title><style>p{color:red}</style></head>
<body><h1>Senior Java Developer</h1><p>Build banking services.</p>
<ul><li>Java</li><li>Spring Boot</li></ul>
<script>trackPageview()</script></body></html>`

	result := StripHTML(html)

	assert.Contains(t, result, "Senior Java Developer")
	assert.Contains(t, result, "Build banking services.")
	assert.Contains(t, result, "Spring Boot")
	assert.NotContains(t, result, "trackPageview")
	assert.NotContains(t, result, "color:red")
	assert.NotContains(t, result, "<p>")
}
