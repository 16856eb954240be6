package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/personapath/api/internal/domain/roadmap"
)

//go:embed templates/daily_system.md
var DailySystemPrompt string

//go:embed templates/weekly_system.md
var WeeklySystemPrompt string

// BuildDailyWindowPrompt requests one daily card per date of the window.
// Long roadmaps are generated one window (roughly a month) at a time, so the
// prompt always names its exact dates rather than a duration.
func BuildDailyWindowPrompt(personaType string, window roadmap.Window) string {
	days := window.Days()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a personalized daily roadmap for a person with the personality archetype: %s.\n\n", personaType))
	sb.WriteString(fmt.Sprintf("The plan covers the %d days from %s through %s inclusive.\n", len(days), window.Start, window.End.AddDays(-1)))
	sb.WriteString("Produce exactly one daily card for each of these dates, in this order:\n\n")

	sb.WriteString("<dates>\n")
	for _, d := range days {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	sb.WriteString("</dates>\n\n")

	sb.WriteString(fmt.Sprintf("Every task must be specific, actionable, and tailored to the %s archetype. ", personaType))
	sb.WriteString("Return the JSON object described in your instructions and nothing else.")

	return sb.String()
}

// BuildWeeklyMonthPrompt requests exactly four weeks of quests for a
// one-month window.
func BuildWeeklyMonthPrompt(personaType string, window roadmap.Window) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a personalized weekly roadmap for someone with a %s personality archetype.\n\n", personaType))
	sb.WriteString(fmt.Sprintf("The program runs from %s to %s (one month, four weeks numbered 1 to 4).\n", window.Start, window.End))
	sb.WriteString("Week 1 covers foundational concepts; weeks 2 and 3 build on them; week 4 focuses on applied, real-world practice.\n\n")
	sb.WriteString(fmt.Sprintf("Tailor every quest to the %s archetype: make the activities specific, challenging but achievable. ", personaType))
	sb.WriteString("Return the JSON object described in your instructions and nothing else.")

	return sb.String()
}
