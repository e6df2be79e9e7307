// Package industry maps company names to industries using the loaded
// classification table, and exposes per-industry domain expertise and the
// regulated-industry flag used by client-experience scoring.
package industry

import (
	"strings"

	"github.com/tmori/talentmatch/internal/lexicon"
)

// legal suffixes stripped during company-name normalization.
var legalSuffixes = []string{
	"incorporated", "inc", "corporation", "corp", "llc", "ltd",
	"group", "holdings", "company", "co",
}

// Classifier answers industry questions about company names. The table is
// ordered and iterated front to back; the first matching industry wins, which
// keeps classification reproducible.
type Classifier struct {
	industries []lexicon.Industry
}

// New builds a Classifier over the embedded industry table.
func New() *Classifier {
	return &Classifier{industries: lexicon.Industries()}
}

// NewWithTable builds a Classifier over a caller-supplied table. Used by tests
// and by deployments that load a customer-specific table.
func NewWithTable(industries []lexicon.Industry) *Classifier {
	return &Classifier{industries: industries}
}

// Normalize lowercases a company name, strips punctuation and legal suffixes
// (Inc/Corp/LLC/...), and collapses whitespace.
func Normalize(companyName string) string {
	name := strings.ToLower(strings.TrimSpace(companyName))

	// Strip punctuation except the &/- that are part of real names.
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '&', r == '-', r == ' ':
			sb.WriteRune(r)
		}
	}
	name = strings.Join(strings.Fields(sb.String()), " ")

	// Repeatedly strip trailing legal suffixes: "Acme Holdings LLC" -> "acme".
	for {
		stripped := false
		for _, suffix := range legalSuffixes {
			if name == suffix {
				continue
			}
			if strings.HasSuffix(name, " "+suffix) {
				name = strings.TrimSpace(strings.TrimSuffix(name, " "+suffix))
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}

	return name
}

// IndustryOf returns the industry for a company name, or "" when the company
// is not in the table. Lookup is exact normalized match first, then substring
// containment in either direction, in table order.
func (c *Classifier) IndustryOf(companyName string) string {
	normalized := Normalize(companyName)
	if normalized == "" {
		return ""
	}

	for _, ind := range c.industries {
		for _, known := range ind.Companies {
			if normalized == known {
				return ind.Name
			}
		}
	}

	for _, ind := range c.industries {
		for _, known := range ind.Companies {
			if strings.Contains(normalized, known) || strings.Contains(known, normalized) {
				return ind.Name
			}
		}
	}

	return ""
}

// DomainsOf returns the domain-expertise areas associated with an industry.
// Unknown industries yield an empty set.
func (c *Classifier) DomainsOf(industryName string) []string {
	for _, ind := range c.industries {
		if ind.Name == industryName {
			return ind.Domains
		}
	}
	return []string{}
}

// IsRegulated reports whether an industry carries regulatory compliance
// requirements.
func (c *Classifier) IsRegulated(industryName string) bool {
	for _, ind := range c.industries {
		if ind.Name == industryName {
			return ind.Regulated
		}
	}
	return false
}
