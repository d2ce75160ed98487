package advice

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-advisor/internal/analysis"
	"github.com/jonathan/resume-advisor/internal/types"
)

// WelcomeMessage opens every chat session.
const WelcomeMessage = "Hi! I'm your ResumePro Career Advisor. I've analyzed your resume against the job description. " +
	"Ask me anything about improving your resume! Try asking:\n\n" +
	"• 'How can I improve my resume?'\n" +
	"• 'Analyze my skills'\n" +
	"• 'Review my experience'\n" +
	"• 'What's missing?'"

// maxTopSuggestions caps the suggestions in an improvement reply.
const maxTopSuggestions = 3

// Respond returns the deterministic reply to message.
func Respond(message string, in Input) string {
	switch DetectIntent(message) {
	case IntentImprove:
		return renderImprovements(in)
	case IntentReview:
		return RenderReview(in)
	case IntentSkills:
		return renderSkills(in)
	case IntentExperience:
		return renderExperience(in)
	case IntentProjects:
		return renderProjects(in)
	case IntentHelp:
		return renderHelp()
	default:
		return renderGeneralTips()
	}
}

func priorityMarker(p types.Priority) string {
	switch p {
	case types.PriorityHigh:
		return "[HIGH]"
	case types.PriorityMedium:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}

func renderImprovements(in Input) string {
	var b strings.Builder
	b.WriteString("**Resume Improvement Analysis:**\n\n")

	suggestions := analysis.Suggestions(in.Record, in.Gaps)
	if len(suggestions) == 0 {
		b.WriteString("Your resume looks well-aligned with the job requirements!\n\n")
		return b.String()
	}

	if len(suggestions) > maxTopSuggestions {
		suggestions = suggestions[:maxTopSuggestions]
	}
	b.WriteString("**Priority Improvements:**\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "%s **%s**: %s\n", priorityMarker(s.Priority), s.Category, s.Message)
		fmt.Fprintf(&b, "   *Action*: %s\n\n", s.Action)
	}
	return b.String()
}

var tierSentences = map[string]string{
	analysis.TierStrong:   "Your resume shows strong alignment with the job requirements. You have a good chance of being selected.",
	analysis.TierGood:     "Your resume is competitive but has some areas for improvement. With some enhancements, you could be a strong candidate.",
	analysis.TierFair:     "Your resume needs significant improvements to be competitive for this position.",
	analysis.TierNotReady: "Your resume is not well-aligned with this job. Consider applying for positions that better match your current skills.",
}

var tierClosings = map[string]string{
	analysis.TierStrong:   "High chance of being selected!",
	analysis.TierGood:     "Good chance with some improvements",
	analysis.TierFair:     "Moderate chance, needs work",
	analysis.TierNotReady: "Consider other opportunities or significant improvements",
}

// RenderReview returns the full narrative review: assessment tier,
// strengths, improvements and the selection probability.
func RenderReview(in Input) string {
	tier := analysis.Tier(in.Score)

	var b strings.Builder
	b.WriteString("**Honest Resume Review:**\n\n")
	fmt.Fprintf(&b, "**Overall Assessment: %s**\n%s\n\n", tier, tierSentences[tier])

	if strengths := analysis.Strengths(in.Record, in.Gaps); len(strengths) > 0 {
		b.WriteString("**Strengths:**\n")
		writeBullets(&b, strengths)
		b.WriteString("\n")
	}

	if improvements := analysis.Improvements(in.Gaps); len(improvements) > 0 {
		b.WriteString("**Areas for Improvement:**\n")
		writeBullets(&b, improvements)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Selection Probability: %.1f%%**\n", in.Score)
	b.WriteString(tierClosings[tier])
	return b.String()
}

func renderSkills(in Input) string {
	if len(in.Gaps.MissingSkills) == 0 {
		return "**Skills Analysis:** Your skills match well with the job requirements!"
	}
	var b strings.Builder
	b.WriteString("**Skills Analysis:**\n\n")
	fmt.Fprintf(&b, "**Missing Skills**: %s\n\n", strings.Join(in.Gaps.MissingSkills, ", "))
	b.WriteString("**Recommendations:**\n")
	writeBullets(&b, []string{
		"Take online courses (Coursera, Udemy, edX)",
		"Work on personal projects using these technologies",
		"Add relevant certifications to your resume",
		"Include these skills in your projects section",
	})
	return b.String()
}

func renderExperience(in Input) string {
	var b strings.Builder
	b.WriteString("**Experience Analysis:**\n\n")
	if len(in.Gaps.WeakExperience) == 0 {
		b.WriteString("Your experience section looks strong!")
		return b.String()
	}
	b.WriteString("**Areas for Improvement:**\n")
	writeBullets(&b, []string{
		"Add quantifiable achievements (e.g., 'Increased efficiency by 25%')",
		"Use strong action verbs (Developed, Implemented, Managed)",
		"Include specific technologies and tools used",
		"Add metrics and results where possible",
	})
	return b.String()
}

func renderProjects(in Input) string {
	var b strings.Builder
	b.WriteString("**Projects Analysis:**\n\n")
	if len(in.Gaps.ProjectGaps) == 0 {
		b.WriteString("Your projects section looks good!")
		return b.String()
	}
	b.WriteString("**Recommendations:**\n")
	writeBullets(&b, []string{
		"Add 2-3 relevant projects that showcase required skills",
		"Include GitHub links and live demos if available",
		"Describe the technologies used and your role",
		"Highlight problem-solving and technical skills",
	})
	return b.String()
}

func renderHelp() string {
	var b strings.Builder
	b.WriteString("**ResumePro Career Advisor**\n\n")
	b.WriteString("I can help you improve your resume! Ask me about:\n\n")
	writeBullets(&b, []string{
		"**'How can I improve my resume?'** - Get overall suggestions",
		"**'Will I be selected?'** - Check selection probability",
		"**'Give me an honest review'** - Get detailed feedback",
		"**'Analyze my skills'** - Check skill gaps",
		"**'Review my experience'** - Experience section tips",
		"**'Check my projects'** - Project section advice",
	})
	b.WriteString("\nJust type your question and I'll provide personalized advice!")
	return b.String()
}

func renderGeneralTips() string {
	var b strings.Builder
	b.WriteString("**General Resume Tips:**\n\n")
	writeBullets(&b, []string{
		"**Tailor your resume** to match the job description",
		"**Use keywords** from the job posting",
		"**Quantify achievements** with numbers and metrics",
		"**Keep it concise** (1-2 pages maximum)",
		"**Proofread carefully** for errors",
	})
	b.WriteString("\nAsk me specific questions like 'Will I be selected?' or 'Give me an honest review' for detailed feedback!")
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
