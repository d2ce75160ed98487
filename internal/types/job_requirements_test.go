package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducationLevel(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   EducationLevel
		wantOK bool
	}{
		{"empty means any", "", EducationAny, true},
		{"exact", "Bachelor's", EducationBachelor, true},
		{"lowercase", "master's", EducationMaster, true},
		{"padded", "  PhD ", EducationPhD, true},
		{"with space", "high school", EducationHighSchool, true},
		{"unknown", "Doctorate", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEducationLevel(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobRequirements_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     JobRequirements
		wantErr bool
	}{
		{
			name:    "valid",
			req:     JobRequirements{Skills: []string{"Go"}, MinExperience: 2, EducationLevel: EducationBachelor},
			wantErr: false,
		},
		{
			name:    "empty education level is any",
			req:     JobRequirements{Skills: []string{"Go"}},
			wantErr: false,
		},
		{
			name:    "negative experience",
			req:     JobRequirements{MinExperience: -1, EducationLevel: EducationAny},
			wantErr: true,
		},
		{
			name:    "unknown education level",
			req:     JobRequirements{EducationLevel: "Doctorate"},
			wantErr: true,
		},
		{
			name:    "blank skill",
			req:     JobRequirements{Skills: []string{"Go", ""}, EducationLevel: EducationAny},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobRequirements_HasSkill(t *testing.T) {
	req := JobRequirements{Skills: []string{"Python", "REST APIs"}}

	assert.True(t, req.HasSkill("python"))
	assert.True(t, req.HasSkill("rest apis"))
	assert.False(t, req.HasSkill("rest"))
}

func TestResumeRecord_Summary(t *testing.T) {
	record := NewResumeRecord()
	record.Skills = []string{"Go", "SQL"}
	record.Projects = []string{"Tracker App"}

	summary := record.Summary()
	require.Equal(t, NotFound, summary.Name)
	assert.Equal(t, NotFound, summary.Email)
	assert.Equal(t, 2, summary.SkillCount)
	assert.Equal(t, 1, summary.ProjectCount)
	assert.Equal(t, 0, summary.ExperienceCount)

	record.Name = "Jane Doe"
	record.Email = "jane@example.com"
	summary = record.Summary()
	assert.Equal(t, "Jane Doe", summary.Name)
	assert.Equal(t, "jane@example.com", summary.Email)
}
