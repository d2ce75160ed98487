package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_advisor binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_advisor"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_advisor ./cmd/resume_advisor'", binaryPath)
	}

	return binaryPath
}

// writeResume writes a plain text resume into a temp dir and returns its path
func writeResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write resume: %v", err)
	}
	return path
}

const sampleResume = "Jane Doe\nSKILLS\nPython\nSQL\nEXPERIENCE\nEngineer at Acme 2022\nDeveloped APIs"
