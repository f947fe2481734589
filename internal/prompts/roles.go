// Package prompts holds the role-conditioned prompt templates. Role is
// advisory framing, not an access-control gate: an unrecognized role falls
// back to the learner template instead of failing.
package prompts

import "strings"

// Template pairs the system and user message formats for one role. The
// system text carries a {context} placeholder, the user text an {input}
// placeholder.
type Template struct {
	System string
	User   string
}

const learnerSystem = `You are a helpful AI assistant acting as a teacher for a learner.
Your goal is to explain concepts clearly, provide step-by-step instructions, and suggest learning paths.
Answer the user's question based on the provided context.
If the answer is not in the context, use your general knowledge but mention that it's general knowledge.

Context:
{context}
`

const supportSystem = `You are a helpful AI assistant acting as a Support Engineer.
Your goal is to troubleshoot issues, propose hypotheses, and provide guided steps.
Focus on error codes, logs, and configuration settings.
Answer the user's question based on the provided context.
If the answer is not in the context, state that you don't know.

Context:
{context}
`

var (
	Learner = Template{System: learnerSystem, User: "{input}"}
	Support = Template{System: supportSystem, User: "{input}"}
)

// ForRole selects the template for a role, matching case-insensitively.
// Any value other than "support", including the empty string, selects the
// learner template.
func ForRole(role string) Template {
	if strings.EqualFold(strings.TrimSpace(role), "support") {
		return Support
	}
	return Learner
}

// Fill substitutes the retrieved context and the user query into the
// template placeholders.
func (t Template) Fill(contextText, input string) (system, user string) {
	system = strings.ReplaceAll(t.System, "{context}", contextText)
	user = strings.ReplaceAll(t.User, "{input}", input)
	return system, user
}
