package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-advisor/internal/lexicon"
)

// BoundaryFunc reports whether line opens a new entry.
type BoundaryFunc func(line string) bool

// Boundary returns the entry boundary detector for a section, or nil when
// every line of the section is its own item.
func Boundary(section Section, lex *lexicon.Lexicon) BoundaryFunc {
	switch section {
	case SectionEducation:
		return func(line string) bool {
			return lexicon.ContainsAny(strings.ToLower(line), lex.EducationBoundaries)
		}
	case SectionExperience:
		return func(line string) bool {
			return lexicon.ContainsAny(strings.ToLower(line), lex.ExperienceBoundaries)
		}
	case SectionProjects:
		return func(line string) bool {
			return isProjectBoundary(line, lex.Projects)
		}
	default:
		return nil
	}
}

func isProjectBoundary(line string, rules lexicon.ProjectRules) bool {
	for _, suffix := range rules.TitleSuffixes {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	if utf8.RuneCountInString(line) < rules.ShortLineLength &&
		lexicon.ContainsAny(strings.ToLower(line), rules.Keywords) {
		return true
	}
	for _, marker := range rules.BulletMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// entryAccumulator collects lines of the current entry. Its only actions are
// add and flush; flush emits the pending lines joined by single spaces and
// resets the buffer.
type entryAccumulator struct {
	boundary BoundaryFunc
	pending  []string
	entries  []string
}

func newEntryAccumulator(boundary BoundaryFunc) *entryAccumulator {
	return &entryAccumulator{boundary: boundary}
}

func (a *entryAccumulator) add(line string) {
	if a.boundary == nil {
		a.entries = append(a.entries, line)
		return
	}
	if len(a.pending) > 0 && a.boundary(line) {
		a.flush()
	}
	a.pending = append(a.pending, line)
}

func (a *entryAccumulator) flush() {
	if len(a.pending) == 0 {
		return
	}
	a.entries = append(a.entries, strings.Join(a.pending, " "))
	a.pending = nil
}

// ExtractEntries groups the content lines of one section into entries.
func ExtractEntries(section Section, lines []string, lex *lexicon.Lexicon) []string {
	acc := newEntryAccumulator(Boundary(section, lex))
	for _, line := range lines {
		acc.add(line)
	}
	acc.flush()
	if acc.entries == nil {
		return []string{}
	}
	return acc.entries
}
