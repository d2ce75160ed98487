package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AdvicePrompt(t *testing.T) {
	tmpl, err := Get(AdviceFile, "career-advice")
	require.NoError(t, err)
	assert.Contains(t, tmpl, "{{.Question}}")
	assert.Contains(t, tmpl, "Provide helpful career advice")
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get(AdviceFile, "fallback")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGet_IsCached(t *testing.T) {
	first, err := Get(AdviceFile, "career-advice")
	require.NoError(t, err)

	cacheMu.RLock()
	_, cached := cache[AdviceFile]
	cacheMu.RUnlock()
	assert.True(t, cached)

	second, err := Get(AdviceFile, "career-advice")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{"single", "Hello {{.Name}}", map[string]string{"Name": "Jane"}, "Hello Jane"},
		{"repeated", "{{.A}}-{{.A}}", map[string]string{"A": "x"}, "x-x"},
		{"unknown left alone", "{{.A}} {{.B}}", map[string]string{"A": "1"}, "1 {{.B}}"},
		{"value not re-expanded", "{{.A}}", map[string]string{"A": "{{.B}}", "B": "no"}, "{{.B}}"},
		{"no data", "{{.A}}", nil, "{{.A}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestRender(t *testing.T) {
	out, err := Render(AdviceFile, "career-advice", map[string]string{
		"Resume":   "Name: Jane",
		"Job":      "Skills: Go",
		"Gaps":     "Missing skills: none",
		"Score":    "90.0",
		"Question": "How do I improve?",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "User Question: How do I improve?")
	assert.Contains(t, out, "Selection Probability: 90.0%")
	assert.NotContains(t, out, "{{.")
}
