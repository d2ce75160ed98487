package main

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/types"
)

func sampleJob() types.JobRequirements {
	return types.JobRequirements{
		Skills:         []string{"Python", "SQL", "AWS"},
		MinExperience:  1,
		EducationLevel: types.EducationAny,
	}
}

func TestAnalyzeFiles_KeepsOrderAndErrors(t *testing.T) {
	good := writeResume(t, "jane.txt", sampleResume)
	other := writeResume(t, "john.md", "John Roe\nSKILLS\nAWS")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	unsupported := writeResume(t, "resume.rtf", sampleResume)

	results := analyzeFiles([]string{good, missing, other, unsupported}, sampleJob(), lexicon.Default(), 2, true)
	require.Len(t, results, 4)

	assert.Equal(t, good, results[0].Path)
	require.NotNil(t, results[0].Analysis)
	assert.InDelta(t, 88.5, results[0].Analysis.Score, 1e-9)
	assert.Contains(t, results[0].Review, "88.5")

	assert.Equal(t, missing, results[1].Path)
	assert.Contains(t, results[1].Error, "file not found")
	assert.Nil(t, results[1].Analysis)

	require.NotNil(t, results[2].Analysis)
	assert.Equal(t, "John Roe", results[2].Analysis.Summary.Name)
	assert.Equal(t, []string{"Python", "SQL"}, results[2].Analysis.Gaps.MissingSkills)

	assert.Contains(t, results[3].Error, "unsupported format")
}

func TestAnalyzeFiles_ZeroLimit(t *testing.T) {
	path := writeResume(t, "jane.txt", sampleResume)

	results := analyzeFiles([]string{path}, sampleJob(), lexicon.Default(), 0, false)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	assert.Empty(t, results[0].Review)
}

func TestPrintResults_VerboseShowsDocumentMetadata(t *testing.T) {
	path := writeResume(t, "jane.txt", sampleResume)
	job := sampleJob()
	results := analyzeFiles([]string{path}, job, lexicon.Default(), 1, false)
	require.NotNil(t, results[0].Document)

	var out, errOut bytes.Buffer
	printResults(&out, &errOut, results, &job, true)

	text := out.String()
	assert.Contains(t, text, `"source": "`+path+`"`)
	assert.Contains(t, text, `"hash": "`+results[0].Document.Hash+`"`)
	assert.Contains(t, text, "JOB REQUIREMENTS")
	assert.Empty(t, errOut.String())

	out.Reset()
	printResults(&out, &errOut, results, &job, false)
	assert.NotContains(t, out.String(), `"hash"`)
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	path := writeResume(t, "jane.txt", sampleResume)

	cmd := exec.Command(binaryPath, "analyze", path,
		"--skills", "Python, SQL, AWS", "--min-experience", "1", "--education", "Any", "--json")
	output, err := cmd.Output()
	require.NoError(t, err)

	var results []fileResult
	require.NoError(t, json.Unmarshal(output, &results))
	require.Len(t, results, 1)
	assert.InDelta(t, 88.5, results[0].Analysis.Score, 1e-9)
	assert.Equal(t, "Strong Candidate", results[0].Analysis.Tier)
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resume := writeResume(t, "jane.txt", sampleResume)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"no resume", []string{"analyze"}, "requires at least 1 arg"},
		{"unsupported format", []string{"analyze", writeResume(t, "cv.rtf", "x")}, "unsupported format"},
		{"bad education", []string{"analyze", resume, "--education", "Doctorate"}, "education_level"},
		{"negative experience", []string{"analyze", resume, "--min-experience", "-2"}, "min_experience"},
		{"missing config", []string{"analyze", resume, "--config", "/nonexistent/config.json"}, "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := exec.Command(binaryPath, tt.args...).CombinedOutput()
			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestAnalyzeCommand_Text(t *testing.T) {
	binaryPath := getBinaryPath(t)
	path := writeResume(t, "jane.txt", sampleResume)

	output, err := exec.Command(binaryPath, "analyze", path, "--job-title", "Data Scientist", "--verbose", "--review").Output()
	require.NoError(t, err)

	text := string(output)
	assert.Contains(t, text, "JOB REQUIREMENTS")
	assert.Contains(t, text, "RESUME SUMMARY")
	assert.Contains(t, text, "GAP ANALYSIS")
	assert.Contains(t, text, "Jane Doe")
}
