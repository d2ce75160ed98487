package analysis

import (
	"strings"

	"github.com/jonathan/resume-advisor/internal/types"
)

// Suggestion categories in priority order.
const (
	CategorySkills         = "Skills"
	CategoryExperience     = "Experience"
	CategoryEducation      = "Education"
	CategoryProjects       = "Projects"
	CategoryCertifications = "Certifications"
)

// Suggestions lists improvements in fixed order: Skills, Experience,
// Education, Projects, Certifications. A category appears only when it has a
// gap; Certifications appears when the resume lists none.
func Suggestions(record types.ResumeRecord, gaps types.GapReport) []types.Suggestion {
	suggestions := []types.Suggestion{}

	if len(gaps.MissingSkills) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category: CategorySkills,
			Priority: types.PriorityHigh,
			Message:  "Add these missing skills: " + strings.Join(gaps.MissingSkills, ", "),
			Action:   "Consider taking online courses or adding relevant projects that demonstrate these skills",
		})
	}
	if len(gaps.WeakExperience) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category: CategoryExperience,
			Priority: types.PriorityHigh,
			Message:  "Strengthen your work experience section",
			Action:   "Add quantifiable achievements, use action verbs, and include specific technologies used",
		})
	}
	if len(gaps.EducationGaps) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category: CategoryEducation,
			Priority: types.PriorityMedium,
			Message:  gaps.EducationGaps[0],
			Action:   "Highlight relevant coursework or certifications that demonstrate required knowledge",
		})
	}
	if len(gaps.ProjectGaps) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category: CategoryProjects,
			Priority: types.PriorityMedium,
			Message:  "Add more relevant projects",
			Action:   "Create projects that showcase the required skills and technologies",
		})
	}
	if len(record.Certifications) == 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category: CategoryCertifications,
			Priority: types.PriorityLow,
			Message:  "Consider adding relevant certifications",
			Action:   "Look for industry-recognized certifications in your field",
		})
	}

	return suggestions
}

// Strengths lists what the resume already does well.
func Strengths(record types.ResumeRecord, gaps types.GapReport) []string {
	strengths := []string{}
	if len(gaps.MissingSkills) == 0 {
		strengths = append(strengths, "Strong skill match")
	}
	if len(gaps.WeakExperience) == 0 {
		strengths = append(strengths, "Good experience descriptions")
	}
	if len(gaps.ProjectGaps) == 0 {
		strengths = append(strengths, "Relevant projects")
	}
	if len(record.Certifications) > 0 {
		strengths = append(strengths, "Professional certifications")
	}
	return strengths
}

// maxListedSkills caps the skills named in the improvements list.
const maxListedSkills = 3

// Improvements lists the areas that hold the resume back.
func Improvements(gaps types.GapReport) []string {
	improvements := []string{}
	if len(gaps.MissingSkills) > 0 {
		listed := gaps.MissingSkills
		if len(listed) > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		improvements = append(improvements, "Missing key skills: "+strings.Join(listed, ", "))
	}
	if len(gaps.WeakExperience) > 0 {
		improvements = append(improvements, "Experience section needs strengthening")
	}
	if len(gaps.EducationGaps) > 0 {
		improvements = append(improvements, "Education requirements not fully met")
	}
	if len(gaps.ProjectGaps) > 0 {
		improvements = append(improvements, "Need more relevant projects")
	}
	return improvements
}
