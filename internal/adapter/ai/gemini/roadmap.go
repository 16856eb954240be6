package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/personapath/api/internal/adapter/ai/prompt"
	"github.com/personapath/api/internal/adapter/ai/sanitize"
	"github.com/personapath/api/internal/domain/ai"
	"github.com/personapath/api/internal/domain/roadmap"
)

const (
	minTasksPerCard = 1
	maxPriority     = 5
	weeksPerMonth   = 4
)

// dailyResponse is the expected JSON shape of a daily-plan completion.
type dailyResponse struct {
	OverallGoals []string  `json:"overall_goals"`
	DailyCards   []cardRec `json:"daily_cards"`
}

type cardRec struct {
	Date             string    `json:"date"`
	FocusArea        string    `json:"focus_area"`
	Tasks            []taskRec `json:"tasks"`
	ReflectionPrompt string    `json:"reflection_prompt"`
}

type taskRec struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	TimeSlot      string   `json:"time_slot"`
	EstimatedTime string   `json:"estimated_time"`
	Priority      int      `json:"priority"`
	Resources     []string `json:"resources"`
}

// weeklyResponse is the expected JSON shape of a weekly-plan completion.
type weeklyResponse struct {
	OverallGoals []string  `json:"overall_goals"`
	Weeks        []weekRec `json:"weeks"`
}

type weekRec struct {
	WeekNumber int           `json:"week_number"`
	Tasks      []weekTaskRec `json:"tasks"`
}

type weekTaskRec struct {
	TaskName  string   `json:"task_name"`
	Resources []string `json:"resources"`
	Time      string   `json:"time"`
	Practice  string   `json:"practice"`
}

// PlanDailyWindow implements roadmap.Planner for one generation window.
func (p *Provider) PlanDailyWindow(ctx context.Context, personaType string, window roadmap.Window) (*roadmap.MonthPlan, error) {
	userPrompt := prompt.BuildDailyWindowPrompt(personaType, window)

	text, usage, err := p.Generate(ctx, ai.Request{
		System: prompt.DailySystemPrompt,
		Prompt: userPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("daily roadmap generation failed for %s..%s: %w", window.Start, window.End, err)
	}
	logUsage(ctx, "daily roadmap window", usage)

	plan, err := parseDailyResponse(text)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse daily roadmap response",
			"window_start", window.Start.String(),
			"error", err,
			"response", truncateForLog(text, 500),
		)
		return nil, err
	}
	return plan, nil
}

// PlanWeeklyMonth implements roadmap.Planner for the weekly variant.
func (p *Provider) PlanWeeklyMonth(ctx context.Context, personaType string, window roadmap.Window) (*roadmap.WeekPlan, error) {
	userPrompt := prompt.BuildWeeklyMonthPrompt(personaType, window)

	text, usage, err := p.Generate(ctx, ai.Request{
		System: prompt.WeeklySystemPrompt,
		Prompt: userPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("weekly roadmap generation failed: %w", err)
	}
	logUsage(ctx, "weekly roadmap month", usage)

	plan, err := parseWeeklyResponse(text)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse weekly roadmap response",
			"error", err,
			"response", truncateForLog(text, 500),
		)
		return nil, err
	}
	return plan, nil
}

// parseDailyResponse decodes and validates a daily-plan completion. Cards are
// sorted by date; a card with a missing required field fails the whole
// response rather than leaving a silent gap in the calendar.
func parseDailyResponse(raw string) (*roadmap.MonthPlan, error) {
	var resp dailyResponse
	if err := sanitize.Decode(raw, &resp); err != nil {
		return nil, err
	}

	if len(resp.DailyCards) == 0 {
		return nil, fmt.Errorf("%w: missing daily_cards", ai.ErrMalformedResponse)
	}
	if resp.OverallGoals == nil {
		return nil, fmt.Errorf("%w: missing overall_goals", ai.ErrMalformedResponse)
	}

	cards := make([]roadmap.DailyCard, 0, len(resp.DailyCards))
	for i, rec := range resp.DailyCards {
		card, err := toDailyCard(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: daily_cards[%d]: %v", ai.ErrMalformedResponse, i, err)
		}
		cards = append(cards, card)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Date.Before(cards[j].Date)
	})

	return &roadmap.MonthPlan{Cards: cards, Goals: resp.OverallGoals}, nil
}

func toDailyCard(rec cardRec) (roadmap.DailyCard, error) {
	date, err := roadmap.ParseDate(rec.Date)
	if err != nil {
		return roadmap.DailyCard{}, err
	}
	if strings.TrimSpace(rec.FocusArea) == "" {
		return roadmap.DailyCard{}, fmt.Errorf("missing focus_area")
	}
	if len(rec.Tasks) < minTasksPerCard {
		return roadmap.DailyCard{}, fmt.Errorf("no tasks for %s", rec.Date)
	}

	tasks := make([]roadmap.Task, 0, len(rec.Tasks))
	for i, tr := range rec.Tasks {
		task, err := toTask(tr)
		if err != nil {
			return roadmap.DailyCard{}, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		tasks = append(tasks, task)
	}

	return roadmap.DailyCard{
		Date:             date,
		FocusArea:        strings.TrimSpace(rec.FocusArea),
		Tasks:            tasks,
		ReflectionPrompt: strings.TrimSpace(rec.ReflectionPrompt),
	}, nil
}

func toTask(rec taskRec) (roadmap.Task, error) {
	if strings.TrimSpace(rec.Title) == "" {
		return roadmap.Task{}, fmt.Errorf("missing title")
	}
	start, err := roadmap.ParseClockTime(rec.StartTime)
	if err != nil {
		return roadmap.Task{}, err
	}
	end, err := roadmap.ParseClockTime(rec.EndTime)
	if err != nil {
		return roadmap.Task{}, err
	}

	// The scheduled start time is authoritative when the model mislabels the
	// slot.
	slot := roadmap.TimeSlot(strings.ToLower(strings.TrimSpace(rec.TimeSlot)))
	if !slot.IsValid() {
		slot = roadmap.SlotForHour(start.Hour)
	}

	priority := rec.Priority
	if priority < 1 {
		priority = 1
	} else if priority > maxPriority {
		priority = maxPriority
	}

	resources := rec.Resources
	if resources == nil {
		resources = []string{}
	}

	return roadmap.Task{
		Title:         strings.TrimSpace(rec.Title),
		Description:   strings.TrimSpace(rec.Description),
		StartTime:     start,
		EndTime:       end,
		TimeSlot:      slot,
		EstimatedTime: strings.TrimSpace(rec.EstimatedTime),
		Priority:      priority,
		Resources:     resources,
	}, nil
}

// parseWeeklyResponse decodes and validates a weekly-plan completion. Exactly
// four weeks are required; they are sorted by the model's week numbers and
// renumbered contiguously from 1.
func parseWeeklyResponse(raw string) (*roadmap.WeekPlan, error) {
	var resp weeklyResponse
	if err := sanitize.Decode(raw, &resp); err != nil {
		return nil, err
	}

	if len(resp.Weeks) != weeksPerMonth {
		return nil, fmt.Errorf("%w: expected %d weeks, got %d", ai.ErrMalformedResponse, weeksPerMonth, len(resp.Weeks))
	}
	if resp.OverallGoals == nil {
		return nil, fmt.Errorf("%w: missing overall_goals", ai.ErrMalformedResponse)
	}

	sort.SliceStable(resp.Weeks, func(i, j int) bool {
		return resp.Weeks[i].WeekNumber < resp.Weeks[j].WeekNumber
	})

	weeks := make([]roadmap.Week, 0, weeksPerMonth)
	for i, rec := range resp.Weeks {
		if len(rec.Tasks) == 0 {
			return nil, fmt.Errorf("%w: weeks[%d] has no tasks", ai.ErrMalformedResponse, i)
		}
		tasks := make([]roadmap.WeeklyTask, 0, len(rec.Tasks))
		for j, tr := range rec.Tasks {
			if strings.TrimSpace(tr.TaskName) == "" {
				return nil, fmt.Errorf("%w: weeks[%d].tasks[%d] has no task_name", ai.ErrMalformedResponse, i, j)
			}
			resources := tr.Resources
			if resources == nil {
				resources = []string{}
			}
			tasks = append(tasks, roadmap.WeeklyTask{
				TaskName:  strings.TrimSpace(tr.TaskName),
				Resources: resources,
				Time:      strings.TrimSpace(tr.Time),
				Practice:  roadmap.FormatPractice(tr.Practice),
			})
		}
		weeks = append(weeks, roadmap.Week{
			WeekNumber: i + 1,
			Tasks:      tasks,
		})
	}

	return &roadmap.WeekPlan{Weeks: weeks, Goals: resp.OverallGoals}, nil
}
