// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintJobRequirements outputs the requirements the resume is compared with.
func (p *Printer) PrintJobRequirements(job *types.JobRequirements) {
	if job == nil {
		return
	}

	var sb strings.Builder
	if job.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:      %s\n", job.Title))
	}
	sb.WriteString(fmt.Sprintf("Experience: %d+ years\n", job.MinExperience))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", job.EducationLevel))
	if len(job.Skills) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Skills", job.Skills)
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeSummary outputs the extracted resume overview.
func (p *Printer) PrintResumeSummary(summary types.ResumeSummary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", summary.Name))
	sb.WriteString(fmt.Sprintf("Email:       %s\n", summary.Email))
	sb.WriteString(fmt.Sprintf("Skills:      %d\n", summary.SkillCount))
	sb.WriteString(fmt.Sprintf("Experience:  %d entries\n", summary.ExperienceCount))
	sb.WriteString(fmt.Sprintf("Projects:    %d\n", summary.ProjectCount))
	sb.WriteString(fmt.Sprintf("Education:   %d entries", summary.EducationCount))

	p.printBox("RESUME SUMMARY", sb.String())
}

// PrintGaps outputs the gap report with the score and tier.
func (p *Printer) PrintGaps(gaps types.GapReport, score float64, tier string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selection probability: %.1f%%\n", score))
	sb.WriteString(fmt.Sprintf("Assessment:            %s\n", tier))

	empty := len(gaps.MissingSkills) == 0 && len(gaps.WeakExperience) == 0 &&
		len(gaps.EducationGaps) == 0 && len(gaps.ProjectGaps) == 0
	if empty {
		sb.WriteString("\n✓ No gaps found")
		p.printBox("GAP ANALYSIS", sb.String())
		return
	}

	sb.WriteString("\n")
	writeList(&sb, "Missing skills", gaps.MissingSkills)
	writeList(&sb, "Experience", gaps.WeakExperience)
	writeList(&sb, "Education", gaps.EducationGaps)
	writeList(&sb, "Projects", gaps.ProjectGaps)

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the prioritized suggestions.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(s.Priority)), s.Category))
		sb.WriteString(fmt.Sprintf("  %s\n", s.Message))
		sb.WriteString(fmt.Sprintf("  → %s", s.Action))
		if i < len(suggestions)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

// PrintInsights outputs industry and trend notes.
func (p *Printer) PrintInsights(insights []string) {
	if len(insights) == 0 {
		return
	}

	var sb strings.Builder
	for _, insight := range insights {
		sb.WriteString(fmt.Sprintf("• %s\n", insight))
	}

	p.printBox("INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs every section of an analysis in order.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}
	p.PrintResumeSummary(a.Summary)
	p.PrintGaps(a.Gaps, a.Score, a.Tier)
	p.PrintSuggestions(a.Suggestions)
	p.PrintInsights(a.Insights)
}
