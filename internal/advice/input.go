package advice

import (
	"github.com/jonathan/resume-advisor/internal/analysis"
	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/types"
)

// Input is everything a reply may draw on.
type Input struct {
	Record types.ResumeRecord
	Job    types.JobRequirements
	Gaps   types.GapReport
	Score  float64
}

// NewInput analyzes record against job.
func NewInput(record types.ResumeRecord, job types.JobRequirements, lex *lexicon.Lexicon) Input {
	gaps := analysis.Analyze(record, job, lex)
	return Input{
		Record: record,
		Job:    job,
		Gaps:   gaps,
		Score:  analysis.Score(record, gaps),
	}
}
