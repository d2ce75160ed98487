package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// EducationLevel is the minimum education a job asks for.
type EducationLevel string

// Education levels accepted in job requirements.
const (
	EducationAny        EducationLevel = "Any"
	EducationHighSchool EducationLevel = "High School"
	EducationAssociate  EducationLevel = "Associate's"
	EducationBachelor   EducationLevel = "Bachelor's"
	EducationMaster     EducationLevel = "Master's"
	EducationPhD        EducationLevel = "PhD"
)

// EducationLevels lists the levels in ascending order.
var EducationLevels = []EducationLevel{
	EducationAny,
	EducationHighSchool,
	EducationAssociate,
	EducationBachelor,
	EducationMaster,
	EducationPhD,
}

// ParseEducationLevel matches s case-insensitively against the known levels.
// An empty string means Any.
func ParseEducationLevel(s string) (EducationLevel, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return EducationAny, true
	}
	for _, level := range EducationLevels {
		if strings.EqualFold(trimmed, string(level)) {
			return level, true
		}
	}
	return "", false
}

// JobRequirements describes what a target job asks for.
type JobRequirements struct {
	Title          string         `json:"title,omitempty"`
	Description    string         `json:"description"`
	Skills         []string       `json:"skills" validate:"dive,required"`
	MinExperience  int            `json:"min_experience" validate:"gte=0"`
	EducationLevel EducationLevel `json:"education_level" validate:"education_level"`
}

// HasSkill reports whether skill is one of the required skills, ignoring case.
func (j JobRequirements) HasSkill(skill string) bool {
	for _, s := range j.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// Validate validates the JobRequirements using the validator.
func (j *JobRequirements) Validate() error {
	return NewValidator().Struct(j)
}

// NewValidator returns a validator with the education_level rule registered.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("education_level", func(fl validator.FieldLevel) bool {
		_, ok := ParseEducationLevel(fl.Field().String())
		return ok
	})
	return validate
}
