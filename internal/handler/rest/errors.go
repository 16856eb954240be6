package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personapath/api/internal/domain/ai"
	"github.com/personapath/api/internal/domain/roadmap"
	"github.com/personapath/api/internal/domain/survey"
)

// errorResponse is the uniform error body: a stable machine-readable kind
// plus a human-readable message.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondBadRequest reports a request that failed before reaching the
// domain layer, e.g. an unparseable body or query parameter.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_input", Message: message})
}

// respondError maps the domain error taxonomy onto HTTP statuses. Client
// mistakes are 400, provider trouble is 502 (retryable by the caller),
// unusable model output is 500 (retrying the same prompt would likely
// reproduce it).
func respondError(c *gin.Context, err error) {
	var status int
	var kind string

	switch {
	case errors.Is(err, survey.ErrEmptyResponses),
		errors.Is(err, roadmap.ErrInvalidDuration),
		errors.Is(err, roadmap.ErrEmptyPersona):
		status, kind = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, ai.ErrRateLimited):
		status, kind = http.StatusBadGateway, "rate_limited"
	case errors.Is(err, ai.ErrUpstream):
		status, kind = http.StatusBadGateway, "upstream_error"
	case errors.Is(err, ai.ErrMalformedResponse), errors.Is(err, ai.ErrOutputTruncated):
		status, kind = http.StatusInternalServerError, "malformed_model_response"
	default:
		status, kind = http.StatusInternalServerError, "internal_error"
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"kind", kind,
			"error", err,
		)
	}

	c.JSON(status, errorResponse{Error: kind, Message: err.Error()})
}
