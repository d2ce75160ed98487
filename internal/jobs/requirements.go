package jobs

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-advisor/internal/schemas"
	"github.com/jonathan/resume-advisor/internal/types"
	"gopkg.in/yaml.v3"
)

// Input is raw job requirements as a user supplies them.
type Input struct {
	Title          string
	Description    string
	Skills         []string
	SkillsText     string
	MinExperience  int
	EducationLevel string
}

// ParseSkills splits free text on commas and newlines, trims each item,
// drops empties, and removes case-insensitive duplicates keeping the first
// spelling.
func ParseSkills(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	return DedupeSkills(fields)
}

// DedupeSkills trims, drops empties and removes case-insensitive duplicates.
func DedupeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// Build turns input into validated JobRequirements. Skills come from Skills
// and SkillsText combined. When a title is given, the matching template
// fills in a missing description or skill list.
func Build(in Input) (*types.JobRequirements, error) {
	level, ok := types.ParseEducationLevel(in.EducationLevel)
	if !ok {
		return nil, &ValidationError{
			Field:   "education_level",
			Message: "must be one of Any, High School, Associate's, Bachelor's, Master's, PhD",
		}
	}

	skills := DedupeSkills(append(append([]string(nil), in.Skills...), ParseSkills(in.SkillsText)...))
	description := strings.TrimSpace(in.Description)

	if title := strings.TrimSpace(in.Title); title != "" && (len(skills) == 0 || description == "") {
		tmpl, _ := Resolve(title)
		if len(skills) == 0 {
			skills = tmpl.Skills
		}
		if description == "" {
			description = tmpl.Description
		}
	}

	req := &types.JobRequirements{
		Title:          strings.TrimSpace(in.Title),
		Description:    description,
		Skills:         skills,
		MinExperience:  in.MinExperience,
		EducationLevel: level,
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks requirements with struct validation rules and reports the
// first failing field.
func Validate(req *types.JobRequirements) error {
	err := req.Validate()
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Cause:   err,
		}
	}
	return &ValidationError{Message: err.Error(), Cause: err}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "required":
		return "must not be empty"
	case "education_level":
		return "unknown education level"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// fileInput mirrors the job requirements file format.
type fileInput struct {
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description" json:"description"`
	Skills         []string `yaml:"skills" json:"skills"`
	MinExperience  int      `yaml:"min_experience" json:"min_experience"`
	EducationLevel string   `yaml:"education_level" json:"education_level"`
}

// LoadFile reads job requirements from a YAML or JSON file, validates it
// against the job requirements schema, then builds it like user input.
func LoadFile(path string) (*types.JobRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Message: "failed to read file", Cause: err}
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &FileError{Path: path, Message: "failed to decode", Cause: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := schemas.Validate(schemas.JobRequirements, raw); err != nil {
		return nil, &FileError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var in fileInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, &FileError{Path: path, Message: "failed to decode", Cause: err}
	}
	return Build(Input{
		Title:          in.Title,
		Description:    in.Description,
		Skills:         in.Skills,
		MinExperience:  in.MinExperience,
		EducationLevel: in.EducationLevel,
	})
}
