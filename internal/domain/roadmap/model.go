package roadmap

import "fmt"

// TimeSlot is the broad part of day a task is scheduled in.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotNight     TimeSlot = "night"
)

// IsValid checks if the slot is one of the allowed values.
func (s TimeSlot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNight:
		return true
	default:
		return false
	}
}

// SlotForHour maps a 24-hour clock hour to its time slot. Used when the model
// emits an unknown slot label: the scheduled start time is authoritative.
func SlotForHour(hour int) TimeSlot {
	switch {
	case hour < 12:
		return SlotMorning
	case hour < 17:
		return SlotAfternoon
	case hour < 21:
		return SlotEvening
	default:
		return SlotNight
	}
}

// Task is a single scheduled activity within a daily card.
type Task struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartTime     ClockTime `json:"start_time"`
	EndTime       ClockTime `json:"end_time"`
	TimeSlot      TimeSlot  `json:"time_slot"`
	EstimatedTime string    `json:"estimated_time"`
	Priority      int       `json:"priority"`
	Resources     []string  `json:"resources"`
}

// DailyCard is one day's plan: 4-5 tasks around a focus area.
type DailyCard struct {
	Date             Date   `json:"date"`
	FocusArea        string `json:"focus_area"`
	Tasks            []Task `json:"tasks"`
	ReflectionPrompt string `json:"reflection_prompt"`
}

// WeeklyTask is one quest within a week of the weekly roadmap variant.
type WeeklyTask struct {
	TaskName  string   `json:"task_name"`
	Resources []string `json:"resources"`
	Time      string   `json:"time"`
	Practice  string   `json:"practice"`
}

// Week groups weekly tasks under a 1-based contiguous week number.
type Week struct {
	WeekNumber int          `json:"week_number"`
	Tasks      []WeeklyTask `json:"tasks"`
}

// Roadmap is the daily-variant result: one card per calendar day in
// [StartDate, EndDate).
type Roadmap struct {
	UserID         string      `json:"user_id,omitempty"`
	PersonaType    string      `json:"persona_type"`
	DurationMonths int         `json:"duration_months"`
	StartDate      Date        `json:"start_date"`
	EndDate        Date        `json:"end_date"`
	DailyCards     []DailyCard `json:"daily_cards"`
	OverallGoals   []string    `json:"overall_goals"`
}

// WeeklyRoadmap is the weekly-variant result: exactly four weeks covering one
// month.
type WeeklyRoadmap struct {
	UserID         string   `json:"user_id,omitempty"`
	PersonaType    string   `json:"persona_type"`
	DurationMonths int      `json:"duration_months"`
	StartDate      Date     `json:"start_date"`
	EndDate        Date     `json:"end_date"`
	Weeks          []Week   `json:"weeks"`
	OverallGoals   []string `json:"overall_goals"`
}

// SupportedDurations are the duration_months values the product offers.
var SupportedDurations = []int{1, 3, 6, 12}

// ValidateDuration rejects unsupported duration_months values explicitly
// rather than silently truncating.
func ValidateDuration(months int) error {
	for _, d := range SupportedDurations {
		if months == d {
			return nil
		}
	}
	return fmt.Errorf("%w: %d (supported: 1, 3, 6, 12)", ErrInvalidDuration, months)
}

// VerifyDailyCoverage checks that cards cover every day of the window exactly
// once, in calendar order.
func VerifyDailyCoverage(window Window, cards []DailyCard) error {
	days := window.Days()
	if len(cards) != len(days) {
		return fmt.Errorf("expected %d daily cards for %s..%s, got %d",
			len(days), window.Start, window.End, len(cards))
	}
	for i, card := range cards {
		if card.Date != days[i] {
			return fmt.Errorf("daily card %d: expected date %s, got %s", i, days[i], card.Date)
		}
	}
	return nil
}
