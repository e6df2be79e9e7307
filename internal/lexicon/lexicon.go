// Package lexicon loads the reference tables used by the extraction and
// scoring components: the technical skill vocabulary, the common job title
// list, and the industry classification table. Tables are stored as JSON files
// and embedded at compile time so they can be updated without touching any
// scoring code.
package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var dataFiles embed.FS

// SkillCategory groups related skill terms under a category name.
// Category and term order follow the source file.
type SkillCategory struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// Industry describes one industry entry in the classification table.
// Table order is significant: classification is first-match-wins.
type Industry struct {
	Name      string   `json:"name"`
	Regulated bool     `json:"regulated"`
	Companies []string `json:"companies"`
	Domains   []string `json:"domains"`
}

type skillsFile struct {
	Categories    []SkillCategory `json:"categories"`
	CloudServices []string        `json:"cloudServices"`
}

type titlesFile struct {
	CommonTitles []string `json:"commonTitles"`
	RoleNouns    []string `json:"roleNouns"`
}

type industriesFile struct {
	Industries []Industry `json:"industries"`
}

var (
	loadOnce   sync.Once
	loadErr    error
	skills     skillsFile
	titles     titlesFile
	industries industriesFile
)

func load() error {
	loadOnce.Do(func() {
		if loadErr = readJSON("skills.json", &skills); loadErr != nil {
			return
		}
		if loadErr = readJSON("titles.json", &titles); loadErr != nil {
			return
		}
		loadErr = readJSON("industries.json", &industries)
	})
	return loadErr
}

func readJSON(filename string, v any) error {
	data, err := dataFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read lexicon file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse lexicon file %s: %w", filename, err)
	}
	return nil
}

func mustLoad() {
	if err := load(); err != nil {
		panic(fmt.Sprintf("lexicon: %v", err))
	}
}

// Skills returns all curated skill terms flattened in file order.
// The returned slice is shared; callers must not modify it.
func Skills() []string {
	mustLoad()
	total := 0
	for _, cat := range skills.Categories {
		total += len(cat.Terms)
	}
	flat := make([]string, 0, total)
	for _, cat := range skills.Categories {
		flat = append(flat, cat.Terms...)
	}
	return flat
}

// SkillCategories returns the skill vocabulary grouped by category, in file order.
func SkillCategories() []SkillCategory {
	mustLoad()
	return skills.Categories
}

// CloudServices returns the structured cloud-service acronyms (S3, EC2, ...)
// that are matched case-sensitively by the extractor.
func CloudServices() []string {
	mustLoad()
	return skills.CloudServices
}

// CommonTitles returns the fixed list of common job titles, lowercased in the
// source file.
func CommonTitles() []string {
	mustLoad()
	return titles.CommonTitles
}

// RoleNouns returns the seniority/role nouns that terminate a title-case line
// (Developer, Engineer, Architect, ...).
func RoleNouns() []string {
	mustLoad()
	return titles.RoleNouns
}

// Industries returns the ordered industry classification table.
func Industries() []Industry {
	mustLoad()
	return industries.Industries
}
