package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/types"
)

// TailoringTip closes every insights list.
const TailoringTip = "Career Tip: Tailor your resume for each application by matching keywords from the job description"

// Insights returns industry notes matched against the job description, the
// trending skills present in the resume, and a closing tailoring tip.
func Insights(record types.ResumeRecord, job types.JobRequirements, lex *lexicon.Lexicon) []string {
	if lex == nil {
		lex = lexicon.Default()
	}
	insights := []string{}

	description := strings.ToLower(job.Description)
	for _, rule := range lex.IndustryInsights {
		if strings.Contains(description, rule.Keyword) {
			insights = append(insights, rule.Message)
		}
	}

	if trending := TrendingSkills(record, lex); len(trending) > 0 {
		insights = append(insights, fmt.Sprintf("Trending Skills: You have %d trending skills: %s",
			len(trending), strings.Join(trending, ", ")))
	}

	return append(insights, TailoringTip)
}

// TrendingSkills returns the lexicon's trending skills found in the resume's
// skills text, in lexicon order.
func TrendingSkills(record types.ResumeRecord, lex *lexicon.Lexicon) []string {
	skillsText := joinLower(record.Skills)
	found := []string{}
	for _, skill := range lex.TrendingSkills {
		if strings.Contains(skillsText, skill) {
			found = append(found, skill)
		}
	}
	return found
}
