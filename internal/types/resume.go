// Package types provides type definitions for structured data used throughout the resume-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the normalized form of one resume. It is built once per
// analysis request and treated as read-only afterwards.
type ResumeRecord struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Education      []string `json:"education"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
}

// NewResumeRecord returns a record with every list field non-nil so that
// JSON output always carries arrays.
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		Education:      []string{},
		Skills:         []string{},
		Experience:     []string{},
		Projects:       []string{},
		Certifications: []string{},
	}
}

// ResumeSummary is the short overview shown after an upload is analyzed.
type ResumeSummary struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	SkillCount      int    `json:"skill_count"`
	ExperienceCount int    `json:"experience_count"`
	ProjectCount    int    `json:"project_count"`
	EducationCount  int    `json:"education_count"`
}

// NotFound is displayed in place of an empty contact field.
const NotFound = "Not found"

// Summary builds the overview for a record.
func (r ResumeRecord) Summary() ResumeSummary {
	s := ResumeSummary{
		Name:            r.Name,
		Email:           r.Email,
		SkillCount:      len(r.Skills),
		ExperienceCount: len(r.Experience),
		ProjectCount:    len(r.Projects),
		EducationCount:  len(r.Education),
	}
	if s.Name == "" {
		s.Name = NotFound
	}
	if s.Email == "" {
		s.Email = NotFound
	}
	return s
}
