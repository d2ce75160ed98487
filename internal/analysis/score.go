package analysis

import (
	"math"

	"github.com/jonathan/resume-advisor/internal/types"
)

// Rubric weights per gap category. They sum to 1.0.
const (
	skillsWeight     = 0.4
	experienceWeight = 0.3
	educationWeight  = 0.15
	projectsWeight   = 0.15
)

// Rubric adjustments, applied before weighting.
const (
	missingSkillPenalty = 10.0
	experienceBonus     = 10.0
	experiencePenalty   = -20.0
	educationBonus      = 5.0
	educationPenalty    = -15.0
	projectsBonus       = 5.0
	projectsPenalty     = -15.0
	certificationBonus  = 5.0
)

// Tier thresholds on the selection probability.
const (
	StrongThreshold = 80.0
	GoodThreshold   = 60.0
	FairThreshold   = 40.0
)

// Tier names.
const (
	TierStrong   = "Strong Candidate"
	TierGood     = "Good Candidate"
	TierFair     = "Needs Improvement"
	TierNotReady = "Not Ready"
)

// Score converts a gap report into a selection probability in [0, 100].
// It is a hand-tuned linear rubric: each missing skill costs 10 points of
// skill match, weighted by 0.4; the other categories add a bonus when clean
// and a penalty when not; certifications add a flat bonus before clamping.
func Score(record types.ResumeRecord, gaps types.GapReport) float64 {
	score := 100.0

	skillsMatch := math.Max(0, 100-missingSkillPenalty*float64(len(gaps.MissingSkills)))
	score -= (100 - skillsMatch) * skillsWeight

	score += pick(len(gaps.WeakExperience) == 0, experienceBonus, experiencePenalty) * experienceWeight
	score += pick(len(gaps.EducationGaps) == 0, educationBonus, educationPenalty) * educationWeight
	score += pick(len(gaps.ProjectGaps) == 0, projectsBonus, projectsPenalty) * projectsWeight

	if len(record.Certifications) > 0 {
		score += certificationBonus
	}

	return math.Max(0, math.Min(100, score))
}

// Tier names the assessment band for a score.
func Tier(score float64) string {
	switch {
	case score >= StrongThreshold:
		return TierStrong
	case score >= GoodThreshold:
		return TierGood
	case score >= FairThreshold:
		return TierFair
	default:
		return TierNotReady
	}
}

func pick(clean bool, bonus, penalty float64) float64 {
	if clean {
		return bonus
	}
	return penalty
}
