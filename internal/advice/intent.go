// Package advice turns an analysis and a free-text question into a reply.
//
// Replies are chosen by intent, detected from keywords in the question.
// A Generator produces the final text: RuleBased is deterministic and
// always available, ModelBacked asks a generative model and falls back to
// RuleBased on any failure.
package advice

import "strings"

// Intent is the kind of answer a question asks for.
type Intent string

const (
	IntentImprove    Intent = "improve"
	IntentReview     Intent = "review"
	IntentSkills     Intent = "skills"
	IntentExperience Intent = "experience"
	IntentProjects   Intent = "projects"
	IntentHelp       Intent = "help"
	IntentGeneral    Intent = "general"
)

// intentRules are checked in order; the first rule with a keyword contained
// in the lowercased message wins.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentImprove, []string{"improve", "better"}},
	{IntentReview, []string{"selected", "chance", "probability"}},
	{IntentReview, []string{"honest", "review"}},
	{IntentSkills, []string{"skills"}},
	{IntentExperience, []string{"experience"}},
	{IntentProjects, []string{"projects"}},
	{IntentHelp, []string{"help", "what"}},
}

// DetectIntent classifies a user message.
func DetectIntent(message string) Intent {
	lowered := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}
