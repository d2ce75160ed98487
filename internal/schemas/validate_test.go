package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_KnownSchemas(t *testing.T) {
	for _, name := range []string{Lexicon, JobRequirements} {
		t.Run(name, func(t *testing.T) {
			source, err := Source(name)
			require.NoError(t, err)
			assert.Contains(t, source, "\"type\": \"object\"")
		})
	}
}

func TestSource_Unknown(t *testing.T) {
	_, err := Source("nope")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "nope", loadErr.Name)
}

func TestValidate_JobRequirements(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{"valid", `{"skills":["Go","SQL"],"min_experience":2,"education_level":"Bachelor's"}`, false},
		{"empty object", `{}`, false},
		{"negative experience", `{"min_experience":-1}`, true},
		{"unknown level", `{"education_level":"Doctorate"}`, true},
		{"unknown field", `{"salary":100}`, true},
		{"skills wrong type", `{"skills":"Go"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(tt.json), &doc))

			err := Validate(JobRequirements, doc)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
			assert.Contains(t, err.Error(), "job_requirements validation failed")
		})
	}
}

func TestValidate_GoDocument(t *testing.T) {
	doc := map[string]any{
		"section_headers":       map[string]any{"SKILLS": "SKILLS"},
		"education_boundaries":  []any{"degree"},
		"experience_boundaries": []any{"engineer"},
		"projects": map[string]any{
			"title_suffixes":    []any{":"},
			"short_line_length": 60,
			"keywords":          []any{"app"},
			"bullet_markers":    []any{"-"},
		},
		"experience_signals": []any{"worked"},
	}
	assert.NoError(t, Validate(Lexicon, doc))

	doc["section_headers"] = map[string]any{"SKILLS": "HOBBIES"}
	err := Validate(Lexicon, doc)
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
