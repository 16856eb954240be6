package roadmap

import "errors"

var (
	// ErrInvalidDuration indicates a duration_months outside the supported set.
	ErrInvalidDuration = errors.New("unsupported roadmap duration")

	// ErrEmptyPersona indicates a missing persona_type parameter.
	ErrEmptyPersona = errors.New("persona type is required")
)
