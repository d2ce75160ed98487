package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-advisor/internal/llm"
	"github.com/jonathan/resume-advisor/internal/logger"
	"github.com/jonathan/resume-advisor/internal/prompts"
)

// Generator produces the reply to a user message.
type Generator interface {
	Generate(ctx context.Context, message string, in Input) string
}

// RuleBased answers from fixed templates. It never fails.
type RuleBased struct{}

// Generate implements Generator.
func (RuleBased) Generate(_ context.Context, message string, in Input) string {
	return Respond(message, in)
}

// Model reply formatting.
const (
	ModelReplyHeader = "**AI Career Advisor:**\n\n"
	MaxModelReply    = 500
)

// ModelBacked asks a generative model for advice. Any model failure is
// logged and answered by Fallback instead.
type ModelBacked struct {
	Client   llm.Client
	Tier     llm.ModelTier
	Fallback Generator
}

// NewModelBacked returns a ModelBacked generator using the standard tier and
// rule-based fallback.
func NewModelBacked(client llm.Client) *ModelBacked {
	return &ModelBacked{Client: client, Tier: llm.TierStandard, Fallback: RuleBased{}}
}

// Generate implements Generator.
func (m *ModelBacked) Generate(ctx context.Context, message string, in Input) string {
	fallback := m.Fallback
	if fallback == nil {
		fallback = RuleBased{}
	}

	reply, err := m.generate(ctx, message, in)
	if err != nil {
		var unavailable *llm.ModelUnavailableError
		event := logger.Warn().Err(err)
		if errors.As(err, &unavailable) {
			event = event.Str("reason", unavailable.Message)
		}
		event.Msg("model advice unavailable, using rule-based reply")
		return fallback.Generate(ctx, message, in)
	}
	return reply
}

func (m *ModelBacked) generate(ctx context.Context, message string, in Input) (string, error) {
	if m.Client == nil {
		return "", &llm.ModelUnavailableError{Message: "no model client configured"}
	}

	prompt, err := BuildPrompt(message, in)
	if err != nil {
		return "", &llm.ModelUnavailableError{Message: "failed to build prompt", Cause: err}
	}

	text, err := m.Client.Generate(ctx, prompt, m.Tier)
	if err != nil {
		return "", err
	}

	cleaned := CleanReply(text, prompt)
	if cleaned == "" {
		return "", &llm.ModelUnavailableError{Message: "model returned only the prompt"}
	}
	return ModelReplyHeader + cleaned, nil
}

// BuildPrompt renders the advice prompt for a question.
func BuildPrompt(message string, in Input) (string, error) {
	return prompts.Render(prompts.AdviceFile, "career-advice", map[string]string{
		"Resume":   describeRecord(in),
		"Job":      describeJob(in),
		"Gaps":     describeGaps(in),
		"Score":    fmt.Sprintf("%.1f", in.Score),
		"Question": strings.TrimSpace(message),
	})
}

// CleanReply strips an echoed prompt from text, trims it, and caps it at
// MaxModelReply characters followed by "...".
func CleanReply(text, prompt string) string {
	if prompt != "" {
		text = strings.ReplaceAll(text, prompt, "")
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > MaxModelReply {
		runes := []rune(text)
		text = string(runes[:MaxModelReply]) + "..."
	}
	return text
}

func describeRecord(in Input) string {
	r := in.Record
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", orNone(r.Name))
	fmt.Fprintf(&b, "Skills: %s\n", orNone(strings.Join(r.Skills, "; ")))
	fmt.Fprintf(&b, "Experience: %s\n", orNone(strings.Join(r.Experience, "; ")))
	fmt.Fprintf(&b, "Education: %s\n", orNone(strings.Join(r.Education, "; ")))
	fmt.Fprintf(&b, "Projects: %s\n", orNone(strings.Join(r.Projects, "; ")))
	fmt.Fprintf(&b, "Certifications: %s", orNone(strings.Join(r.Certifications, "; ")))
	return b.String()
}

func describeJob(in Input) string {
	j := in.Job
	var b strings.Builder
	if j.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", j.Title)
	}
	fmt.Fprintf(&b, "Skills: %s\n", orNone(strings.Join(j.Skills, ", ")))
	fmt.Fprintf(&b, "Minimum experience: %d years\n", j.MinExperience)
	fmt.Fprintf(&b, "Education: %s", orNone(string(j.EducationLevel)))
	return b.String()
}

func describeGaps(in Input) string {
	g := in.Gaps
	var b strings.Builder
	fmt.Fprintf(&b, "Missing skills: %s\n", orNone(strings.Join(g.MissingSkills, ", ")))
	fmt.Fprintf(&b, "Experience: %s\n", orNone(strings.Join(g.WeakExperience, "; ")))
	fmt.Fprintf(&b, "Education: %s\n", orNone(strings.Join(g.EducationGaps, "; ")))
	fmt.Fprintf(&b, "Projects: %s", orNone(strings.Join(g.ProjectGaps, "; ")))
	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}
