// Package parsing turns raw resume text into a structured ResumeRecord.
//
// Extraction runs in three layers: the segmenter labels lines with the
// section they belong to, the entry extractor groups lines of multi-line
// sections into entries, and the field extractor scans every line for
// contact details. All keyword tables come from a lexicon.Lexicon.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-advisor/internal/lexicon"
)

// Section labels a region of resume text.
type Section string

const (
	SectionNone           Section = "NONE"
	SectionEducation      Section = "EDUCATION"
	SectionSkills         Section = "SKILLS"
	SectionExperience     Section = "EXPERIENCE"
	SectionProjects       Section = "PROJECTS"
	SectionCertifications Section = "CERTIFICATIONS"
)

// Segment is a run of content lines under one section label.
type Segment struct {
	Section Section  `json:"section"`
	Lines   []string `json:"lines"`
}

// SplitLines returns the trimmed, non-empty lines of raw.
func SplitLines(raw string) []string {
	parts := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if line := strings.TrimSpace(p); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// HeaderSection reports whether line is a section header and which section it opens.
func HeaderSection(line string, lex *lexicon.Lexicon) (Section, bool) {
	label, ok := lex.SectionFor(line)
	if !ok {
		return SectionNone, false
	}
	return Section(label), true
}

// SegmentText splits raw text into labeled segments in source order. Lines before
// the first header form a NONE segment. Header lines are consumed. A header
// with no content lines still yields an empty segment.
func SegmentText(raw string, lex *lexicon.Lexicon) []Segment {
	var segments []Segment
	current := Segment{Section: SectionNone}
	started := false

	for _, line := range SplitLines(raw) {
		if section, ok := HeaderSection(line, lex); ok {
			if started || len(current.Lines) > 0 {
				segments = append(segments, current)
			}
			current = Segment{Section: section}
			started = true
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	if started || len(current.Lines) > 0 {
		segments = append(segments, current)
	}
	return segments
}
