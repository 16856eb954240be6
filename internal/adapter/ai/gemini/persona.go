package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/personapath/api/internal/adapter/ai/prompt"
	"github.com/personapath/api/internal/adapter/ai/sanitize"
	"github.com/personapath/api/internal/domain/ai"
	"github.com/personapath/api/internal/domain/survey"
)

// personaResponse is the expected JSON shape of a classification completion.
type personaResponse struct {
	Primary   *personaRecord `json:"primary_persona"`
	Secondary *personaRecord `json:"secondary_persona"`
	Careers   []careerRecord `json:"career_matches"`
	Analysis  string         `json:"analysis"`
}

type personaRecord struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

type careerRecord struct {
	Career      string  `json:"career"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// ClassifySurvey implements survey.Classifier.
func (p *Provider) ClassifySurvey(ctx context.Context, answers []survey.Answer) (*survey.Analysis, error) {
	userPrompt := prompt.BuildPersonaUserPrompt(answers)

	text, usage, err := p.Generate(ctx, ai.Request{
		System: prompt.PersonaSystemPrompt,
		Prompt: userPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("persona classification failed: %w", err)
	}
	logUsage(ctx, "persona classification", usage)

	analysis, err := parsePersonaResponse(text)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse persona response",
			"error", err,
			"response", truncateForLog(text, 500),
		)
		return nil, err
	}
	return analysis, nil
}

// parsePersonaResponse decodes and validates a classification completion.
// Confidences are clamped to [0,1]; unknown archetypes and missing primaries
// are malformed, a missing secondary is not.
func parsePersonaResponse(raw string) (*survey.Analysis, error) {
	var resp personaResponse
	if err := sanitize.Decode(raw, &resp); err != nil {
		return nil, err
	}

	if resp.Primary == nil {
		return nil, fmt.Errorf("%w: missing primary_persona", ai.ErrMalformedResponse)
	}
	primary, err := toPersonaResult(*resp.Primary)
	if err != nil {
		return nil, fmt.Errorf("%w: primary_persona: %v", ai.ErrMalformedResponse, err)
	}

	analysis := &survey.Analysis{
		Primary: primary,
		Summary: strings.TrimSpace(resp.Analysis),
	}

	if resp.Secondary != nil {
		secondary, err := toPersonaResult(*resp.Secondary)
		if err != nil {
			return nil, fmt.Errorf("%w: secondary_persona: %v", ai.ErrMalformedResponse, err)
		}
		analysis.Secondary = &secondary
	}

	if len(resp.Careers) == 0 {
		return nil, fmt.Errorf("%w: missing career_matches", ai.ErrMalformedResponse)
	}
	analysis.CareerMatches = make([]survey.CareerMatch, 0, len(resp.Careers))
	for i, c := range resp.Careers {
		if strings.TrimSpace(c.Career) == "" {
			return nil, fmt.Errorf("%w: career_matches[%d] has no career", ai.ErrMalformedResponse, i)
		}
		analysis.CareerMatches = append(analysis.CareerMatches, survey.CareerMatch{
			Career:      strings.TrimSpace(c.Career),
			Confidence:  survey.ClampConfidence(c.Confidence),
			Description: strings.TrimSpace(c.Description),
		})
	}

	return analysis, nil
}

func toPersonaResult(rec personaRecord) (survey.PersonaResult, error) {
	personaType := survey.PersonaType(strings.ToLower(strings.TrimSpace(rec.Type)))
	if !personaType.IsValid() {
		return survey.PersonaResult{}, fmt.Errorf("unknown archetype %q", rec.Type)
	}
	return survey.PersonaResult{
		Type:        personaType,
		Confidence:  survey.ClampConfidence(rec.Confidence),
		Description: strings.TrimSpace(rec.Description),
	}, nil
}

func logUsage(ctx context.Context, operation string, usage *ai.TokenUsage) {
	if usage == nil {
		return
	}
	slog.InfoContext(ctx, "gemini call complete",
		"operation", operation,
		"model", usage.Model,
		"prompt_tokens", usage.PromptTokens,
		"candidates_tokens", usage.CandidatesTokens,
		"total_tokens", usage.TotalTokens,
	)
}
