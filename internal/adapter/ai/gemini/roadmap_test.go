package gemini

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personapath/api/internal/domain/ai"
	"github.com/personapath/api/internal/domain/roadmap"
)

func dailyCardJSON(date string) string {
	return fmt.Sprintf(`{
		"date": %q,
		"focus_area": "Deep work",
		"tasks": [
			{"title": "Read", "description": "Read a chapter", "start_time": "08:00", "end_time": "09:00", "time_slot": "morning", "estimated_time": "60 minutes", "priority": 1, "resources": ["https://example.com"]},
			{"title": "Practice", "description": "Exercises", "start_time": "10:00", "end_time": "11:30", "time_slot": "morning", "estimated_time": "90 minutes", "priority": 2, "resources": []},
			{"title": "Build", "description": "Small project", "start_time": "14:00", "end_time": "16:00", "time_slot": "afternoon", "estimated_time": "120 minutes", "priority": 2, "resources": []},
			{"title": "Reflect", "description": "Journal", "start_time": "21:30", "end_time": "22:00", "time_slot": "night", "estimated_time": "30 minutes", "priority": 4, "resources": []}
		],
		"reflection_prompt": "What did you learn today?"
	}`, date)
}

func TestParseDailyResponse_SortsByDate(t *testing.T) {
	raw := fmt.Sprintf(`{"overall_goals": ["g1"], "daily_cards": [%s, %s, %s]}`,
		dailyCardJSON("2024-03-03"), dailyCardJSON("2024-03-01"), dailyCardJSON("2024-03-02"))

	plan, err := parseDailyResponse(raw)
	require.NoError(t, err)
	require.Len(t, plan.Cards, 3)
	assert.Equal(t, "2024-03-01", plan.Cards[0].Date.String())
	assert.Equal(t, "2024-03-02", plan.Cards[1].Date.String())
	assert.Equal(t, "2024-03-03", plan.Cards[2].Date.String())
	assert.Equal(t, []string{"g1"}, plan.Goals)
	assert.Len(t, plan.Cards[0].Tasks, 4)
}

func TestParseDailyResponse_InfersSlotFromStartTime(t *testing.T) {
	raw := `{"overall_goals": [], "daily_cards": [{
		"date": "2024-03-01",
		"focus_area": "x",
		"tasks": [{"title": "t", "description": "d", "start_time": "19:00", "end_time": "20:00", "time_slot": "twilight", "estimated_time": "60 minutes", "priority": 9, "resources": null}],
		"reflection_prompt": "r"
	}]}`

	plan, err := parseDailyResponse(raw)
	require.NoError(t, err)
	task := plan.Cards[0].Tasks[0]
	assert.Equal(t, roadmap.SlotEvening, task.TimeSlot)
	// Priority clamped into 1..5, nil resources normalized.
	assert.Equal(t, 5, task.Priority)
	assert.NotNil(t, task.Resources)
}

func TestParseDailyResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no cards", `{"overall_goals": ["g"], "daily_cards": []}`},
		{"missing goals", `{"daily_cards": [` + dailyCardJSON("2024-03-01") + `]}`},
		{"bad date", `{"overall_goals": [], "daily_cards": [` + dailyCardJSON("03/01/2024") + `]}`},
		{"task missing title", `{"overall_goals": [], "daily_cards": [{"date": "2024-03-01", "focus_area": "x", "tasks": [{"description": "d", "start_time": "08:00", "end_time": "09:00"}], "reflection_prompt": "r"}]}`},
		{"bad time", `{"overall_goals": [], "daily_cards": [{"date": "2024-03-01", "focus_area": "x", "tasks": [{"title": "t", "start_time": "8 o'clock", "end_time": "09:00"}], "reflection_prompt": "r"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDailyResponse(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ai.ErrMalformedResponse)
		})
	}
}

func weekJSON(n int) string {
	return fmt.Sprintf(`{
		"week_number": %d,
		"tasks": [
			{"task_name": "Quest %d", "resources": [], "time": "9:00 AM - 10:30 AM", "practice": "1. Research the topic\n2. Complete exercises\n3. Review results"},
			{"task_name": "Quest %db", "resources": [], "time": "Evening: 7:00 PM - 8:00 PM", "practice": "Watch the lecture\nTake notes"}
		]
	}`, n, n, n)
}

func TestParseWeeklyResponse_Valid(t *testing.T) {
	raw := fmt.Sprintf(`{"overall_goals": ["Learn fundamentals", "Build a project"], "weeks": [%s, %s, %s, %s]}`,
		weekJSON(1), weekJSON(2), weekJSON(3), weekJSON(4))

	plan, err := parseWeeklyResponse(raw)
	require.NoError(t, err)
	require.Len(t, plan.Weeks, 4)
	for i, w := range plan.Weeks {
		assert.Equal(t, i+1, w.WeekNumber)
		assert.Len(t, w.Tasks, 2)
	}
	// Unnumbered practice text gets numbered.
	assert.Equal(t, "1. Watch the lecture\n2. Take notes", plan.Weeks[0].Tasks[1].Practice)
}

func TestParseWeeklyResponse_RenumbersNonContiguousWeeks(t *testing.T) {
	// A model continuing a multi-month program may number weeks 5..8; the
	// product scope is one month, so numbers collapse to 1..4.
	raw := fmt.Sprintf(`{"overall_goals": ["g"], "weeks": [%s, %s, %s, %s]}`,
		weekJSON(7), weekJSON(5), weekJSON(8), weekJSON(6))

	plan, err := parseWeeklyResponse(raw)
	require.NoError(t, err)
	require.Len(t, plan.Weeks, 4)
	for i, w := range plan.Weeks {
		assert.Equal(t, i+1, w.WeekNumber)
	}
	// Order follows the model's original numbering.
	assert.Equal(t, "Quest 5", plan.Weeks[0].Tasks[0].TaskName)
	assert.Equal(t, "Quest 8", plan.Weeks[3].Tasks[0].TaskName)
}

func TestParseWeeklyResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"three weeks", fmt.Sprintf(`{"overall_goals": ["g"], "weeks": [%s, %s, %s]}`, weekJSON(1), weekJSON(2), weekJSON(3))},
		{"missing goals", fmt.Sprintf(`{"weeks": [%s, %s, %s, %s]}`, weekJSON(1), weekJSON(2), weekJSON(3), weekJSON(4))},
		{"week without tasks", fmt.Sprintf(`{"overall_goals": ["g"], "weeks": [%s, %s, %s, {"week_number": 4, "tasks": []}]}`, weekJSON(1), weekJSON(2), weekJSON(3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWeeklyResponse(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ai.ErrMalformedResponse)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.Validate())

	cfg.APIKey = "key"
	require.NoError(t, cfg.Validate())
}
