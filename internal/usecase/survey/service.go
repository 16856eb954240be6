// Package survey orchestrates the persona detection flow: validate the
// submission, classify it through the AI provider, rank the career matches.
package survey

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/personapath/api/internal/domain/survey"
)

const DefaultClassifyTimeout = 90 * time.Second

// Service handles survey questions and persona detection.
type Service struct {
	classifier survey.Classifier
	timeout    time.Duration
}

// Option is a functional option for configuring Service.
type Option func(*Service)

// WithTimeout sets the ceiling for one classification call. Zero or negative
// values are ignored and the default is used.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService creates a survey service backed by the given classifier.
func NewService(classifier survey.Classifier, opts ...Option) *Service {
	s := &Service{
		classifier: classifier,
		timeout:    DefaultClassifyTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Questions returns the fixed ordered survey.
func (s *Service) Questions() []survey.Question {
	return survey.Questions
}

// Analyze classifies a submission into a persona analysis. Provider and parse
// failures surface unchanged: retrying an identical submission is the
// caller's decision, not ours.
func (s *Service) Analyze(ctx context.Context, sub survey.Submission) (*survey.Analysis, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	analysis, err := s.classifier.ClassifySurvey(ctx, sub.Responses)
	if err != nil {
		return nil, fmt.Errorf("survey analysis: %w", err)
	}

	// Ranked by confidence descending; stable so equal-confidence careers
	// keep the model's order.
	sort.SliceStable(analysis.CareerMatches, func(i, j int) bool {
		return analysis.CareerMatches[i].Confidence > analysis.CareerMatches[j].Confidence
	})

	analysis.UserID = sub.UserID

	slog.InfoContext(ctx, "survey analyzed",
		"user_id", sub.UserID,
		"primary_persona", analysis.Primary.Type,
		"career_matches", len(analysis.CareerMatches),
	)
	return analysis, nil
}
