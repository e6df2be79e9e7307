package industry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmori/talentmatch/internal/lexicon"
)

func TestNormalize_StripsLegalSuffixes(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":             "acme",
		"Acme Corp.":            "acme",
		"Acme, Inc.":            "acme",
		"Globex LLC":            "globex",
		"Initech Ltd":           "initech",
		"Vandelay Holdings LLC": "vandelay",
		"Hooli Group":           "hooli",
		"Wells Fargo":           "wells fargo",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "input %q", input)
	}
}

func TestNormalize_PunctuationAndCase(t *testing.T) {
	assert.Equal(t, "at&t", Normalize("AT&T"))
	assert.Equal(t, "jpmorgan chase", Normalize("J.P.Morgan  Chase!"))
	assert.Equal(t, "", Normalize("   "))
}

func TestIndustryOf_ExactMatch(t *testing.T) {
	c := New()
	assert.Equal(t, "financial services", c.IndustryOf("FIS"))
	assert.Equal(t, "technology", c.IndustryOf("Google"))
	assert.Equal(t, "retail", c.IndustryOf("Walmart Inc."))
}

func TestIndustryOf_SubstringMatch(t *testing.T) {
	c := New()
	// Candidate spelling contains the table entry.
	assert.Equal(t, "financial services", c.IndustryOf("FIS Global"))
	// Table entry contains the candidate spelling.
	assert.Equal(t, "financial services", c.IndustryOf("Goldman"))
}

func TestIndustryOf_Unknown(t *testing.T) {
	c := New()
	assert.Equal(t, "", c.IndustryOf("Totally Unknown Widgets"))
	assert.Equal(t, "", c.IndustryOf(""))
}

func TestIndustryOf_FirstMatchWinsInTableOrder(t *testing.T) {
	table := []lexicon.Industry{
		{Name: "first", Companies: []string{"overlap corp name"}},
		{Name: "second", Companies: []string{"overlap"}},
	}
	c := NewWithTable(table)

	// Exact pass finds nothing; the substring pass must honor table order.
	assert.Equal(t, "first", c.IndustryOf("overlap corp name x"))
}

func TestDomainsOf(t *testing.T) {
	c := New()
	domains := c.DomainsOf("financial services")
	assert.Contains(t, domains, "payments")
	assert.Empty(t, c.DomainsOf("no such industry"))
}

func TestIsRegulated(t *testing.T) {
	c := New()
	assert.True(t, c.IsRegulated("financial services"))
	assert.True(t, c.IsRegulated("healthcare"))
	assert.False(t, c.IsRegulated("technology"))
	assert.False(t, c.IsRegulated("no such industry"))
}
