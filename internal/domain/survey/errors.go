package survey

import "errors"

var (
	// ErrEmptyResponses indicates a submission with no usable answers.
	ErrEmptyResponses = errors.New("survey has no responses")
)
