// Package lexicon holds the keyword tables that drive section detection,
// entry boundaries and experience signals. The tables are data, not code:
// an embedded English default ships with the binary and can be replaced by
// a YAML or JSON file.
package lexicon

import (
	_ "embed"
	"os"
	"strings"
	"sync"

	"github.com/jonathan/resume-advisor/internal/schemas"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultSignalThreshold is used when a table omits experience_signal_threshold.
const DefaultSignalThreshold = 3

// Lexicon is the full set of keyword tables.
type Lexicon struct {
	SectionHeaders            map[string]string `yaml:"section_headers" json:"section_headers"`
	EducationBoundaries       []string          `yaml:"education_boundaries" json:"education_boundaries"`
	ExperienceBoundaries      []string          `yaml:"experience_boundaries" json:"experience_boundaries"`
	Projects                  ProjectRules      `yaml:"projects" json:"projects"`
	ExperienceSignals         []string          `yaml:"experience_signals" json:"experience_signals"`
	ExperienceSignalThreshold int               `yaml:"experience_signal_threshold" json:"experience_signal_threshold"`
	TrendingSkills            []string          `yaml:"trending_skills" json:"trending_skills"`
	IndustryInsights          []InsightRule     `yaml:"industry_insights" json:"industry_insights"`
}

// ProjectRules configures where a new project entry begins.
type ProjectRules struct {
	TitleSuffixes   []string `yaml:"title_suffixes" json:"title_suffixes"`
	ShortLineLength int      `yaml:"short_line_length" json:"short_line_length"`
	Keywords        []string `yaml:"keywords" json:"keywords"`
	BulletMarkers   []string `yaml:"bullet_markers" json:"bullet_markers"`
}

// InsightRule attaches a message to job descriptions containing Keyword.
type InsightRule struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	Message string `yaml:"message" json:"message"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the embedded tables. The result is shared and must not be mutated.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = Parse("default.yaml", defaultYAML)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultLex
}

// Load reads a lexicon from a YAML or JSON file. An empty path yields Default().
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates lexicon content. JSON input is accepted since
// it is valid YAML. The path is only used in error messages.
func Parse(path string, data []byte) (*Lexicon, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode", Cause: err}
	}
	if raw == nil {
		return nil, &LoadError{Path: path, Message: "file is empty"}
	}
	if err := schemas.Validate(schemas.Lexicon, raw); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode", Cause: err}
	}
	lex.normalize()
	return &lex, nil
}

func (l *Lexicon) normalize() {
	headers := make(map[string]string, len(l.SectionHeaders))
	for header, section := range l.SectionHeaders {
		headers[strings.ToUpper(strings.TrimSpace(header))] = section
	}
	l.SectionHeaders = headers

	l.EducationBoundaries = lowerAll(l.EducationBoundaries)
	l.ExperienceBoundaries = lowerAll(l.ExperienceBoundaries)
	l.Projects.Keywords = lowerAll(l.Projects.Keywords)
	l.ExperienceSignals = lowerAll(l.ExperienceSignals)
	l.TrendingSkills = lowerAll(l.TrendingSkills)
	for i := range l.IndustryInsights {
		l.IndustryInsights[i].Keyword = strings.ToLower(l.IndustryInsights[i].Keyword)
	}

	if l.ExperienceSignalThreshold == 0 {
		l.ExperienceSignalThreshold = DefaultSignalThreshold
	}
}

// SectionFor returns the section label for a header line, if it is one.
func (l *Lexicon) SectionFor(line string) (string, bool) {
	section, ok := l.SectionHeaders[strings.ToUpper(strings.TrimSpace(line))]
	return section, ok
}

// ContainsAny reports whether lowered contains any of the keywords.
// Both sides are expected to be lower case already.
func ContainsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
