package main

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-advisor/internal/advice"
)

func TestIsQuit(t *testing.T) {
	for _, msg := range []string{"exit", "QUIT", "Bye"} {
		assert.True(t, isQuit(msg), msg)
	}
	for _, msg := range []string{"", "exit now", "help"} {
		assert.False(t, isQuit(msg), msg)
	}
}

func TestChatCommand_Messages(t *testing.T) {
	binaryPath := getBinaryPath(t)
	path := writeResume(t, "jane.txt", sampleResume)

	output, err := exec.Command(binaryPath, "chat", path,
		"--skills", "Python, SQL, AWS",
		"-m", "What skills am I missing?",
		"-m", "Give me an honest review").Output()
	require.NoError(t, err)

	text := string(output)
	assert.True(t, strings.HasPrefix(text, advice.WelcomeMessage))
	assert.Contains(t, text, "> What skills am I missing?")
	assert.Contains(t, text, "AWS")
	assert.Contains(t, text, "Strong Candidate")
}

func TestChatCommand_Stdin(t *testing.T) {
	binaryPath := getBinaryPath(t)
	path := writeResume(t, "jane.txt", sampleResume)

	cmd := exec.Command(binaryPath, "chat", path, "--skills", "Python")
	cmd.Stdin = strings.NewReader("help\nexit\nskills\n")
	output, err := cmd.Output()
	require.NoError(t, err)

	text := string(output)
	assert.Contains(t, text, advice.WelcomeMessage)
	assert.NotContains(t, text, "Skills Analysis")
}

func TestChatCommand_MissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "chat", "/nonexistent/resume.pdf").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "file not found")
}
