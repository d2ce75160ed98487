package analysis

import (
	"testing"

	"github.com/jonathan/resume-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestions_AllCategoriesInOrder(t *testing.T) {
	gaps := types.GapReport{
		MissingSkills:  []string{"AWS", "Go"},
		WeakExperience: []string{WeakExperienceMessage},
		EducationGaps:  []string{MasterGapMessage},
		ProjectGaps:    []string{ProjectGapMessage},
	}

	suggestions := Suggestions(record(nil), gaps)
	require.Len(t, suggestions, 5)

	categories := make([]string, len(suggestions))
	priorities := make([]types.Priority, len(suggestions))
	for i, s := range suggestions {
		categories[i] = s.Category
		priorities[i] = s.Priority
		assert.NotEmpty(t, s.Action)
	}
	assert.Equal(t, []string{CategorySkills, CategoryExperience, CategoryEducation, CategoryProjects, CategoryCertifications}, categories)
	assert.Equal(t, []types.Priority{types.PriorityHigh, types.PriorityHigh, types.PriorityMedium, types.PriorityMedium, types.PriorityLow}, priorities)
	assert.Equal(t, "Add these missing skills: AWS, Go", suggestions[0].Message)
	assert.Equal(t, MasterGapMessage, suggestions[2].Message)
}

func TestSuggestions_OnlyGapsIncluded(t *testing.T) {
	certified := record(func(r *types.ResumeRecord) { r.Certifications = []string{"PMP"} })

	assert.Empty(t, Suggestions(certified, types.GapReport{}))

	suggestions := Suggestions(certified, types.GapReport{ProjectGaps: []string{ProjectGapMessage}})
	require.Len(t, suggestions, 1)
	assert.Equal(t, CategoryProjects, suggestions[0].Category)
}

func TestStrengthsAndImprovements(t *testing.T) {
	certified := record(func(r *types.ResumeRecord) { r.Certifications = []string{"PMP"} })

	assert.Equal(t, []string{
		"Strong skill match", "Good experience descriptions", "Relevant projects", "Professional certifications",
	}, Strengths(certified, types.GapReport{}))
	assert.Empty(t, Improvements(types.GapReport{}))

	gaps := types.GapReport{
		MissingSkills:  []string{"A", "B", "C", "D"},
		WeakExperience: []string{"x"},
		EducationGaps:  []string{"x"},
		ProjectGaps:    []string{"x"},
	}
	assert.Empty(t, Strengths(record(nil), gaps))
	assert.Equal(t, []string{
		"Missing key skills: A, B, C",
		"Experience section needs strengthening",
		"Education requirements not fully met",
		"Need more relevant projects",
	}, Improvements(gaps))
}

func TestInsights(t *testing.T) {
	rec := record(func(r *types.ResumeRecord) { r.Skills = []string{"Python, Docker", "Kubernetes"} })

	insights := Insights(rec, types.JobRequirements{Description: "Software role working with data pipelines"}, nil)
	require.Len(t, insights, 4)
	assert.Contains(t, insights[0], "Tech Industry Insight")
	assert.Contains(t, insights[1], "Data Industry Insight")
	assert.Equal(t, "Trending Skills: You have 3 trending skills: python, docker, kubernetes", insights[2])
	assert.Equal(t, TailoringTip, insights[3])

	assert.Equal(t, []string{TailoringTip}, Insights(record(nil), types.JobRequirements{Description: "Chef"}, nil))
}

func TestRun(t *testing.T) {
	rec := record(func(r *types.ResumeRecord) {
		r.Name = "Jane"
		r.Skills = []string{"Go"}
		r.Projects = []string{"a", "b"}
	})
	result := Run(rec, types.JobRequirements{Skills: []string{"Go"}}, nil)

	assert.Equal(t, "Jane", result.Summary.Name)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, TierStrong, result.Tier)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, CategoryCertifications, result.Suggestions[0].Category)
}
