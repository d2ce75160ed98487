package analysis

import (
	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/types"
)

// Run computes the full analysis of one resume against one job.
func Run(record types.ResumeRecord, job types.JobRequirements, lex *lexicon.Lexicon) types.Analysis {
	if lex == nil {
		lex = lexicon.Default()
	}
	gaps := Analyze(record, job, lex)
	score := Score(record, gaps)
	return types.Analysis{
		Summary:     record.Summary(),
		Record:      record,
		Gaps:        gaps,
		Score:       score,
		Tier:        Tier(score),
		Suggestions: Suggestions(record, gaps),
		Insights:    Insights(record, job, lex),
	}
}
