// Package prompt builds the natural-language prompts sent to the model. User
// prompts carry per-request data; the accompanying system prompts (embedded
// markdown) pin down the JSON response contracts.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/personapath/api/internal/domain/survey"
)

//go:embed templates/persona_system.md
var PersonaSystemPrompt string

// BuildPersonaUserPrompt serializes survey answers into a classification
// request. The allowed archetype vocabulary is restated per request so the
// model cannot drift from it.
func BuildPersonaUserPrompt(answers []survey.Answer) string {
	var sb strings.Builder

	sb.WriteString("Classify the personality archetype of the respondent from the survey below.\n\n")

	sb.WriteString("Allowed archetypes (the `type` field MUST be one of these, verbatim):\n")
	for _, t := range survey.AllPersonaTypes {
		sb.WriteString(fmt.Sprintf("- %s\n", t))
	}
	sb.WriteString("\n<survey>\n")

	for i, a := range answers {
		question := a.QuestionID
		if q, ok := survey.QuestionByID(a.QuestionID); ok {
			question = q.Text
		}
		sb.WriteString(fmt.Sprintf("[%d] Q (%s): %s\n", i+1, a.QuestionID, question))
		sb.WriteString(fmt.Sprintf("    A: %s\n", strings.TrimSpace(a.Answer)))
	}

	sb.WriteString("</survey>\n\n")
	sb.WriteString(fmt.Sprintf("Total: %d answers. ", len(answers)))
	sb.WriteString("Return the JSON object described in your instructions, with numeric confidences in [0,1] and careers ranked by confidence descending.")

	return sb.String()
}
