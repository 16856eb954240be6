// Package roadmap orchestrates roadmap generation: duration validation,
// calendar windowing, per-month chunked model calls, and calendar-order
// stitching of the results.
package roadmap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/personapath/api/internal/adapter/search"
	"github.com/personapath/api/internal/domain/roadmap"
)

const (
	DefaultGenerateTimeout = 90 * time.Second

	// DefaultMaxConcurrentChunks bounds parallel month-chunk calls. The
	// provider-side rate limiter is the hard gate; this keeps a 12-month
	// request from monopolizing it.
	DefaultMaxConcurrentChunks = 4

	// singleCallMonthThreshold is the window size, in months, still generated
	// with one model call instead of per-month chunks.
	singleCallMonthThreshold = 1

	resourcesPerTask = 2

	// maxConcurrentSearches bounds parallel enrichment lookups. A long
	// roadmap carries hundreds of tasks; run sequentially the lookups alone
	// would eat the request timeout.
	maxConcurrentSearches = 8
)

// Searcher finds supplementary resources for a task. Lookups degrade to an
// empty result set on failure.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) []search.Resource
}

// Service handles daily and weekly roadmap generation.
type Service struct {
	planner             roadmap.Planner
	searcher            Searcher
	timeout             time.Duration
	maxConcurrentChunks int
	today               func() roadmap.Date
}

// Option is a functional option for configuring Service.
type Option func(*Service)

// WithTimeout sets the ceiling for one full generation request, all chunks
// included. Zero or negative values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithSearcher enables web-search resource enrichment. A nil searcher leaves
// enrichment disabled.
func WithSearcher(searcher Searcher) Option {
	return func(s *Service) {
		s.searcher = searcher
	}
}

// WithMaxConcurrentChunks bounds parallel month-chunk generation. Zero or
// negative values are ignored.
func WithMaxConcurrentChunks(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrentChunks = n
		}
	}
}

// withToday overrides the start-date clock in tests.
func withToday(f func() roadmap.Date) Option {
	return func(s *Service) {
		s.today = f
	}
}

// NewService creates a roadmap service backed by the given planner.
func NewService(planner roadmap.Planner, opts ...Option) *Service {
	s := &Service{
		planner:             planner,
		timeout:             DefaultGenerateTimeout,
		maxConcurrentChunks: DefaultMaxConcurrentChunks,
		today:               roadmap.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateDaily builds a day-by-day roadmap covering durationMonths calendar
// months from today. Long windows are generated one month-chunk at a time;
// chunk calls run concurrently and are stitched back in calendar order. If
// any chunk fails the whole request fails: a roadmap with date gaps is worse
// than no roadmap.
func (s *Service) GenerateDaily(ctx context.Context, personaType string, durationMonths int, userID string) (*roadmap.Roadmap, error) {
	if personaType == "" {
		return nil, roadmap.ErrEmptyPersona
	}
	if err := roadmap.ValidateDuration(durationMonths); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.today()
	end := start.AddMonths(durationMonths)
	window := roadmap.Window{Start: start, End: end}

	var chunks []roadmap.Window
	if durationMonths <= singleCallMonthThreshold {
		chunks = []roadmap.Window{window}
	} else {
		chunks = window.SplitByMonth()
	}

	slog.InfoContext(ctx, "generating daily roadmap",
		"persona_type", personaType,
		"duration_months", durationMonths,
		"start_date", start.String(),
		"end_date", end.String(),
		"chunks", len(chunks),
	)

	plans := make([]*roadmap.MonthPlan, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrentChunks)
	for i, chunk := range chunks {
		g.Go(func() error {
			plan, err := s.planner.PlanDailyWindow(gctx, personaType, chunk)
			if err != nil {
				return fmt.Errorf("chunk %d/%d (%s..%s): %w", i+1, len(chunks), chunk.Start, chunk.End, err)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var cards []roadmap.DailyCard
	var goals []string
	for _, plan := range plans {
		cards = append(cards, plan.Cards...)
		goals = append(goals, plan.Goals...)
	}

	if err := roadmap.VerifyDailyCoverage(window, cards); err != nil {
		return nil, fmt.Errorf("stitched roadmap has inconsistent coverage: %w", err)
	}

	s.enrichDailyCards(ctx, cards)

	return &roadmap.Roadmap{
		UserID:         userID,
		PersonaType:    personaType,
		DurationMonths: durationMonths,
		StartDate:      start,
		EndDate:        end,
		DailyCards:     cards,
		OverallGoals:   dedupe(goals),
	}, nil
}

// GenerateWeekly builds the weekly variant: a fixed one-month window of
// exactly four weeks.
func (s *Service) GenerateWeekly(ctx context.Context, personaType string, userID string) (*roadmap.WeeklyRoadmap, error) {
	if personaType == "" {
		return nil, roadmap.ErrEmptyPersona
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.today()
	end := start.AddMonths(1)
	window := roadmap.Window{Start: start, End: end}

	slog.InfoContext(ctx, "generating weekly roadmap",
		"persona_type", personaType,
		"start_date", start.String(),
	)

	plan, err := s.planner.PlanWeeklyMonth(ctx, personaType, window)
	if err != nil {
		return nil, err
	}

	s.enrichWeeks(ctx, plan.Weeks)

	return &roadmap.WeeklyRoadmap{
		UserID:         userID,
		PersonaType:    personaType,
		DurationMonths: 1,
		StartDate:      start,
		EndDate:        end,
		Weeks:          plan.Weeks,
		OverallGoals:   dedupe(plan.Goals),
	}, nil
}

// enrichDailyCards merges web-search results into each task's resources.
// Lookups run concurrently under maxConcurrentSearches; each goroutine owns
// one task. Best effort: a failed or disabled search leaves the model's
// resources.
func (s *Service) enrichDailyCards(ctx context.Context, cards []roadmap.DailyCard) {
	if s.searcher == nil {
		return
	}
	var g errgroup.Group
	g.SetLimit(maxConcurrentSearches)
	for ci := range cards {
		for ti := range cards[ci].Tasks {
			task := &cards[ci].Tasks[ti]
			g.Go(func() error {
				found := s.searcher.Search(ctx, search.EnrichQuery(task.Title, task.Description), resourcesPerTask)
				task.Resources = mergeResources(task.Resources, found)
				return nil
			})
		}
	}
	_ = g.Wait()
}

func (s *Service) enrichWeeks(ctx context.Context, weeks []roadmap.Week) {
	if s.searcher == nil {
		return
	}
	var g errgroup.Group
	g.SetLimit(maxConcurrentSearches)
	for wi := range weeks {
		for ti := range weeks[wi].Tasks {
			task := &weeks[wi].Tasks[ti]
			g.Go(func() error {
				found := s.searcher.Search(ctx, search.EnrichQuery(task.TaskName, task.Practice), resourcesPerTask)
				task.Resources = mergeResources(task.Resources, found)
				return nil
			})
		}
	}
	_ = g.Wait()
}

// mergeResources appends search URLs to the model's resources, deduplicating
// while preserving order.
func mergeResources(base []string, found []search.Resource) []string {
	merged := make([]string, 0, len(base)+len(found))
	merged = append(merged, base...)
	for _, r := range found {
		merged = append(merged, r.URL)
	}
	return dedupe(merged)
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
