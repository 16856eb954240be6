package app

import (
	"context"
	"fmt"

	"github.com/personapath/api/internal/adapter/ai/gemini"
	"github.com/personapath/api/internal/adapter/ai/mock"
	"github.com/personapath/api/internal/adapter/search"
	"github.com/personapath/api/internal/domain/roadmap"
	"github.com/personapath/api/internal/domain/survey"
	"github.com/personapath/api/internal/infra/config"
	roadmapuc "github.com/personapath/api/internal/usecase/roadmap"
	surveyuc "github.com/personapath/api/internal/usecase/survey"
)

// provider is what the AI adapters expose to the rest of the application:
// persona classification plus both roadmap planning modes.
type provider interface {
	survey.Classifier
	roadmap.Planner
	Close() error
}

// Container wires adapters into usecases. Construction fails fast on invalid
// provider configuration; nothing lazily connects afterwards.
type Container struct {
	SurveyService  *surveyuc.Service
	RoadmapService *roadmapuc.Service

	provider provider
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	p, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create ai provider: %w", err)
	}

	roadmapOpts := []roadmapuc.Option{
		roadmapuc.WithTimeout(cfg.RequestTimeout),
	}
	if cfg.TavilyAPIKey != "" {
		roadmapOpts = append(roadmapOpts, roadmapuc.WithSearcher(search.NewClient(cfg.TavilyAPIKey)))
	}

	return &Container{
		SurveyService:  surveyuc.NewService(p, surveyuc.WithTimeout(cfg.RequestTimeout)),
		RoadmapService: roadmapuc.NewService(p, roadmapOpts...),
		provider:       p,
	}, nil
}

func newProvider(ctx context.Context, cfg *config.Config) (provider, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		return gemini.NewProvider(ctx, gemini.Config{
			APIKey:          cfg.GeminiAPIKey,
			Model:           cfg.GeminiModel,
			MaxOutputTokens: cfg.MaxOutputTokens,
		})
	case config.ProviderMock:
		return mock.NewProvider(), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %q", cfg.AIProvider)
	}
}

func (c *Container) Close() error {
	if c.provider != nil {
		return c.provider.Close()
	}
	return nil
}
