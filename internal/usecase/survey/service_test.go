package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personapath/api/internal/adapter/ai/mock"
	"github.com/personapath/api/internal/domain/survey"
)

type stubClassifier struct {
	analysis *survey.Analysis
	err      error
}

func (s *stubClassifier) ClassifySurvey(ctx context.Context, answers []survey.Answer) (*survey.Analysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func TestService_Questions(t *testing.T) {
	svc := NewService(mock.NewProvider())

	questions := svc.Questions()
	require.NotEmpty(t, questions)
	assert.Equal(t, "q1", questions[0].ID)
}

func TestService_Analyze_EmptySubmission(t *testing.T) {
	svc := NewService(mock.NewProvider())

	_, err := svc.Analyze(context.Background(), survey.Submission{})
	require.Error(t, err)
	assert.ErrorIs(t, err, survey.ErrEmptyResponses)
}

func TestService_Analyze_RanksCareersByConfidence(t *testing.T) {
	classifier := &stubClassifier{
		analysis: &survey.Analysis{
			Primary: survey.PersonaResult{Type: survey.PersonaAnalytical, Confidence: 0.9},
			CareerMatches: []survey.CareerMatch{
				{Career: "B", Confidence: 0.5},
				{Career: "A", Confidence: 0.9},
				{Career: "C", Confidence: 0.5},
			},
		},
	}
	svc := NewService(classifier)

	analysis, err := svc.Analyze(context.Background(), survey.Submission{
		UserID:    "u-1",
		Responses: []survey.Answer{{QuestionID: "q1", Answer: "something"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", analysis.UserID)
	require.Len(t, analysis.CareerMatches, 3)
	assert.Equal(t, "A", analysis.CareerMatches[0].Career)
	// Stable sort: equal confidences keep model order.
	assert.Equal(t, "B", analysis.CareerMatches[1].Career)
	assert.Equal(t, "C", analysis.CareerMatches[2].Career)
}

func TestService_Analyze_SurfacesClassifierError(t *testing.T) {
	wantErr := errors.New("upstream exploded")
	svc := NewService(&stubClassifier{err: wantErr})

	_, err := svc.Analyze(context.Background(), survey.Submission{
		Responses: []survey.Answer{{QuestionID: "q1", Answer: "x"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestService_Analyze_WithMockProvider(t *testing.T) {
	svc := NewService(mock.NewProvider())

	analysis, err := svc.Analyze(context.Background(), survey.Submission{
		Responses: []survey.Answer{
			{QuestionID: "q1", Answer: "I enjoy solving puzzles"},
			{QuestionID: "q2", Answer: "Detailed plan, always"},
		},
	})
	require.NoError(t, err)

	assert.True(t, analysis.Primary.Type.IsValid())
	assert.GreaterOrEqual(t, analysis.Primary.Confidence, 0.0)
	assert.LessOrEqual(t, analysis.Primary.Confidence, 1.0)
	assert.NotEmpty(t, analysis.CareerMatches)
}
