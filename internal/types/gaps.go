package types

// GapReport lists the mismatches between a resume and a job, per category.
// It is derived on demand and never stored.
type GapReport struct {
	MissingSkills  []string `json:"missing_skills"`
	WeakExperience []string `json:"weak_experience"`
	EducationGaps  []string `json:"education_gaps"`
	ProjectGaps    []string `json:"project_gaps"`
}

// Priority ranks a suggestion.
type Priority string

// Suggestion priorities, highest first.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Suggestion is one prioritized improvement for a resume.
type Suggestion struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Action   string   `json:"action"`
}

// Analysis bundles everything computed for one resume against one job.
type Analysis struct {
	Summary     ResumeSummary `json:"summary"`
	Record      ResumeRecord  `json:"record"`
	Gaps        GapReport     `json:"gaps"`
	Score       float64       `json:"selection_probability"`
	Tier        string        `json:"tier"`
	Suggestions []Suggestion  `json:"suggestions"`
	Insights    []string      `json:"insights"`
}
