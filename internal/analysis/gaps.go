// Package analysis compares a ResumeRecord against JobRequirements and
// derives gaps, a selection probability, and prioritized suggestions.
// Everything here is a pure function of its inputs.
package analysis

import (
	"strings"

	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/types"
)

// Gap messages.
const (
	WeakExperienceMessage = "Add more detailed work experience descriptions"
	BachelorGapMessage    = "Consider adding Bachelor's degree or equivalent"
	MasterGapMessage      = "Consider adding Master's degree or equivalent"
	ProjectGapMessage     = "Add more relevant projects to showcase practical skills"
)

// MinProjects is the project count below which a project gap is reported.
const MinProjects = 2

// Analyze computes the gap report for a resume against a job. All matching is
// case-insensitive substring containment. A nil lexicon selects the default.
func Analyze(record types.ResumeRecord, job types.JobRequirements, lex *lexicon.Lexicon) types.GapReport {
	if lex == nil {
		lex = lexicon.Default()
	}
	return types.GapReport{
		MissingSkills:  MissingSkills(record, job),
		WeakExperience: weakExperience(record, job, lex),
		EducationGaps:  educationGaps(record, job),
		ProjectGaps:    projectGaps(record),
	}
}

// MissingSkills returns the job skills, in job order, whose lowercased form
// does not appear in the resume's skills text.
func MissingSkills(record types.ResumeRecord, job types.JobRequirements) []string {
	skillsText := joinLower(record.Skills)
	missing := []string{}
	for _, skill := range job.Skills {
		if !strings.Contains(skillsText, strings.ToLower(skill)) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// ExperienceSignalCount counts how many distinct signal words appear in the
// resume's experience text.
func ExperienceSignalCount(record types.ResumeRecord, lex *lexicon.Lexicon) int {
	text := joinLower(record.Experience)
	count := 0
	for _, kw := range lex.ExperienceSignals {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}

func weakExperience(record types.ResumeRecord, job types.JobRequirements, lex *lexicon.Lexicon) []string {
	if job.MinExperience <= 0 {
		return []string{}
	}
	if ExperienceSignalCount(record, lex) < lex.ExperienceSignalThreshold {
		return []string{WeakExperienceMessage}
	}
	return []string{}
}

func educationGaps(record types.ResumeRecord, job types.JobRequirements) []string {
	text := joinLower(record.Education)
	switch job.EducationLevel {
	case types.EducationBachelor:
		if !strings.Contains(text, "bachelor") {
			return []string{BachelorGapMessage}
		}
	case types.EducationMaster:
		if !strings.Contains(text, "master") {
			return []string{MasterGapMessage}
		}
	}
	return []string{}
}

func projectGaps(record types.ResumeRecord) []string {
	if len(record.Projects) < MinProjects {
		return []string{ProjectGapMessage}
	}
	return []string{}
}

func joinLower(items []string) string {
	return strings.ToLower(strings.Join(items, " "))
}
