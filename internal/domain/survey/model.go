package survey

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PersonaType is a labeled personality archetype assigned from survey answers.
type PersonaType string

const (
	PersonaAnalytical    PersonaType = "analytical"
	PersonaCreative      PersonaType = "creative"
	PersonaSocial        PersonaType = "social"
	PersonaPractical     PersonaType = "practical"
	PersonaEnterprising  PersonaType = "enterprising"
	PersonaInvestigative PersonaType = "investigative"
)

// AllPersonaTypes lists the allowed archetype vocabulary in prompt order.
var AllPersonaTypes = []PersonaType{
	PersonaAnalytical,
	PersonaCreative,
	PersonaSocial,
	PersonaPractical,
	PersonaEnterprising,
	PersonaInvestigative,
}

// IsValid checks if the persona type is one of the allowed archetypes.
func (p PersonaType) IsValid() bool {
	for _, t := range AllPersonaTypes {
		if p == t {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.English)

// DisplayName returns the human-facing form of the archetype ("analytical" -> "Analytical").
func (p PersonaType) DisplayName() string {
	return titleCaser.String(string(p))
}

// Question is one fixed survey question.
type Question struct {
	ID   string `json:"question_id"`
	Text string `json:"text"`
}

// Answer is a single free-text answer keyed by question ID. Order is the
// caller's submission order; no uniqueness is enforced.
type Answer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// PersonaResult is one classified archetype with model confidence.
type PersonaResult struct {
	Type        PersonaType `json:"type"`
	Confidence  float64     `json:"confidence"`
	Description string      `json:"description"`
}

// CareerMatch is a career suggestion ranked by confidence.
type CareerMatch struct {
	Career      string  `json:"career"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// Analysis is the full result of a survey submission. Secondary is nil when
// the model identified no meaningful secondary archetype.
type Analysis struct {
	UserID        string         `json:"user_id,omitempty"`
	Primary       PersonaResult  `json:"primary_persona"`
	Secondary     *PersonaResult `json:"secondary_persona,omitempty"`
	CareerMatches []CareerMatch  `json:"career_matches"`
	Summary       string         `json:"analysis"`
}

// Submission is a validated survey submission.
type Submission struct {
	UserID    string   `json:"user_id,omitempty"`
	Responses []Answer `json:"responses"`
}

func (s Submission) Validate() error {
	if len(s.Responses) == 0 {
		return fmt.Errorf("%w: at least one response is required", ErrEmptyResponses)
	}
	for i, r := range s.Responses {
		if strings.TrimSpace(r.QuestionID) == "" {
			return fmt.Errorf("%w: response %d has no question_id", ErrEmptyResponses, i)
		}
	}
	return nil
}

// ClampConfidence forces a model-reported confidence into [0,1]. Small
// out-of-range drift is clamped rather than rejected so that one rounding
// artifact does not fail a whole submission; relative ranking is preserved.
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
