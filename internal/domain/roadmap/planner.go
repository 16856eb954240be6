package roadmap

import "context"

// MonthPlan is the model output for one generation window of the daily
// variant.
type MonthPlan struct {
	Cards []DailyCard
	Goals []string
}

// WeekPlan is the model output for the weekly variant's single month.
type WeekPlan struct {
	Weeks []Week
	Goals []string
}

// Planner generates roadmap content for a bounded calendar window.
// Implemented by the Gemini provider and by the deterministic mock.
type Planner interface {
	// PlanDailyWindow produces one daily card per day of the window.
	PlanDailyWindow(ctx context.Context, personaType string, window Window) (*MonthPlan, error)

	// PlanWeeklyMonth produces exactly four weeks of quests for the window.
	PlanWeeklyMonth(ctx context.Context, personaType string, window Window) (*WeekPlan, error)
}
