package advice

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-advisor/internal/analysis"
	"github.com/jonathan/resume-advisor/internal/types"
	"github.com/stretchr/testify/assert"
)

func weakInput() Input {
	rec := types.NewResumeRecord()
	rec.Skills = []string{"Python"}
	job := types.JobRequirements{
		Skills:         []string{"Python", "SQL", "AWS", "Docker", "Go"},
		MinExperience:  2,
		EducationLevel: types.EducationBachelor,
	}
	return NewInput(rec, job, nil)
}

func strongInput() Input {
	rec := types.NewResumeRecord()
	rec.Skills = []string{"Python, SQL"}
	rec.Experience = []string{"Worked 5 years; developed and managed services"}
	rec.Education = []string{"Bachelor of Science"}
	rec.Projects = []string{"A", "B"}
	rec.Certifications = []string{"CKA"}
	job := types.JobRequirements{Skills: []string{"python", "sql"}, MinExperience: 3, EducationLevel: types.EducationBachelor}
	return NewInput(rec, job, nil)
}

func TestNewInput(t *testing.T) {
	in := weakInput()
	assert.Equal(t, []string{"SQL", "AWS", "Docker", "Go"}, in.Gaps.MissingSkills)
	assert.InDelta(t, analysis.Score(in.Record, in.Gaps), in.Score, 1e-9)
}

func TestRespond_Improve(t *testing.T) {
	reply := Respond("How can I improve?", weakInput())
	assert.Contains(t, reply, "Resume Improvement Analysis")
	assert.Contains(t, reply, "[HIGH] **Skills**: Add these missing skills: SQL, AWS, Docker, Go")
	assert.Contains(t, reply, "[HIGH] **Experience**")
	assert.Contains(t, reply, "[MEDIUM] **Education**")
	assert.NotContains(t, reply, "**Projects**")
	assert.Equal(t, 3, strings.Count(reply, "*Action*"))

	// Only the certification suggestion is left.
	in := strongInput()
	in.Record.Certifications = nil
	reply = Respond("better", in)
	assert.Contains(t, reply, "[LOW] **Certifications**")

	in = strongInput()
	assert.Contains(t, Respond("improve", in), "well-aligned")
}

func TestRenderReview(t *testing.T) {
	strong := RenderReview(strongInput())
	assert.Contains(t, strong, "Overall Assessment: Strong Candidate")
	assert.Contains(t, strong, "• Strong skill match")
	assert.Contains(t, strong, "• Professional certifications")
	assert.NotContains(t, strong, "Areas for Improvement")
	assert.Contains(t, strong, "Selection Probability: 100.0%")
	assert.True(t, strings.HasSuffix(strong, "High chance of being selected!"))

	weak := RenderReview(weakInput())
	assert.Contains(t, weak, "• Missing key skills: SQL, AWS, Docker")
	assert.NotContains(t, weak, "Go\n")
	assert.Contains(t, weak, "• Experience section needs strengthening")
	assert.Contains(t, weak, "• Education requirements not fully met")
	assert.Contains(t, weak, "• Need more relevant projects")
	assert.NotContains(t, weak, "**Strengths:**")
}

func TestRenderReview_Tiers(t *testing.T) {
	tests := []struct {
		score   float64
		tier    string
		closing string
	}{
		{85, "Strong Candidate", "High chance of being selected!"},
		{65, "Good Candidate", "Good chance with some improvements"},
		{45.25, "Needs Improvement", "Moderate chance, needs work"},
		{10, "Not Ready", "Consider other opportunities or significant improvements"},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			in := weakInput()
			in.Score = tt.score
			review := RenderReview(in)
			assert.Contains(t, review, "Overall Assessment: "+tt.tier)
			assert.True(t, strings.HasSuffix(review, tt.closing))
		})
	}
}

func TestRespond_Sections(t *testing.T) {
	weak := weakInput()
	strong := strongInput()

	assert.Contains(t, Respond("Analyze my skills", weak), "**Missing Skills**: SQL, AWS, Docker, Go")
	assert.Contains(t, Respond("Analyze my skills", strong), "Your skills match well")

	assert.Contains(t, Respond("my experience?", weak), "Add quantifiable achievements")
	assert.Contains(t, Respond("my experience?", strong), "looks strong!")

	assert.Contains(t, Respond("my projects", weak), "Add 2-3 relevant projects")
	assert.Contains(t, Respond("my projects", strong), "looks good!")

	assert.Contains(t, Respond("help", weak), "'Will I be selected?'")
	assert.Contains(t, Respond("hi", weak), "General Resume Tips")
}

func TestRespond_Deterministic(t *testing.T) {
	in := weakInput()
	assert.Equal(t, Respond("honest review", in), Respond("honest review", in))
}
