package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/abc-123", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/123", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://notgreenhouse.io.example.com/jobs", PlatformUnknown},
		{"https://careers.example.com/jobs/1", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestSelectors(t *testing.T) {
	content, noise := Selectors("https://boards.greenhouse.io/acme/jobs/1")
	assert.Equal(t, ".job__description.body", content[0])
	assert.Contains(t, content, "main")
	assert.Contains(t, noise, "form")
	assert.Contains(t, noise, ".post-apply")

	content, noise = Selectors("https://example.com/job")
	assert.Equal(t, genericContent, content)
	assert.Equal(t, commonNoise, noise)

	// Returned slices are copies.
	content[0] = "changed"
	assert.Equal(t, ".job-description", genericContent[0])
}
