// Package jobs builds JobRequirements from user input, job files, and a
// table of canned role templates.
package jobs

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// Template is a canned job description with its required skills.
type Template struct {
	Key         string   `yaml:"key" json:"key"`
	Description string   `yaml:"description" json:"description"`
	Skills      []string `yaml:"skills" json:"skills"`
}

type templateTable struct {
	Templates []Template `yaml:"templates"`
	Fallback  Template   `yaml:"fallback"`
}

var (
	tableOnce sync.Once
	table     templateTable
)

func loadTable() templateTable {
	tableOnce.Do(func() {
		if err := yaml.Unmarshal(templatesYAML, &table); err != nil {
			panic(fmt.Sprintf("jobs: embedded templates are invalid: %v", err))
		}
	})
	return table
}

// Templates returns the role templates in match order.
func Templates() []Template {
	t := loadTable()
	out := make([]Template, len(t.Templates))
	for i, tmpl := range t.Templates {
		out[i] = tmpl.clone()
	}
	return out
}

// Fallback returns the generic template used when no role matches.
func Fallback() Template {
	return loadTable().Fallback.clone()
}

// Resolve maps a job title to a template. A template matches when its key
// is contained in the lowercased title or the title is contained in its key.
// The first match in table order wins; otherwise the generic fallback is
// returned with matched false. A blank title never matches.
func Resolve(title string) (tmpl Template, matched bool) {
	lowered := strings.ToLower(strings.TrimSpace(title))
	if lowered != "" {
		for _, t := range loadTable().Templates {
			if strings.Contains(lowered, t.Key) || strings.Contains(t.Key, lowered) {
				return t.clone(), true
			}
		}
	}
	return Fallback(), false
}

func (t Template) clone() Template {
	t.Skills = append([]string(nil), t.Skills...)
	return t
}
