package survey

import "context"

// Classifier turns survey answers into a persona analysis. Implemented by the
// Gemini provider and by the deterministic mock.
type Classifier interface {
	// ClassifySurvey classifies the answers into a primary (and optional
	// secondary) persona plus ranked career matches.
	ClassifySurvey(ctx context.Context, answers []Answer) (*Analysis, error)
}
