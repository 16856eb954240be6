// Package mock provides a deterministic AI provider for local development and
// testing without live API calls.
package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/personapath/api/internal/domain/roadmap"
	"github.com/personapath/api/internal/domain/survey"
)

const (
	primaryConfidence   = 0.9
	secondaryConfidence = 0.45
)

// Provider implements survey.Classifier and roadmap.Planner with canned but
// structurally valid responses.
type Provider struct{}

// NewProvider creates a new mock AI provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Close releases resources (no-op for mock).
func (p *Provider) Close() error {
	return nil
}

// ClassifySurvey derives a persona deterministically from the answer text so
// repeated submissions stay stable.
func (p *Provider) ClassifySurvey(ctx context.Context, answers []survey.Answer) (*survey.Analysis, error) {
	personaType := pickPersona(answers)

	secondaryType := survey.PersonaCreative
	if personaType == survey.PersonaCreative {
		secondaryType = survey.PersonaAnalytical
	}
	secondary := survey.PersonaResult{
		Type:        secondaryType,
		Confidence:  secondaryConfidence,
		Description: fmt.Sprintf("Secondary %s tendencies surfaced in a minority of answers.", secondaryType),
	}

	return &survey.Analysis{
		Primary: survey.PersonaResult{
			Type:        personaType,
			Confidence:  primaryConfidence,
			Description: fmt.Sprintf("The answers consistently point to a %s profile.", personaType),
		},
		Secondary:     &secondary,
		CareerMatches: careersFor(personaType),
		Summary:       fmt.Sprintf("Mock analysis: %d answers classified as %s.", len(answers), personaType),
	}, nil
}

// PlanDailyWindow emits one fixed-shape card per day of the window.
func (p *Provider) PlanDailyWindow(ctx context.Context, personaType string, window roadmap.Window) (*roadmap.MonthPlan, error) {
	days := window.Days()
	cards := make([]roadmap.DailyCard, 0, len(days))
	for i, day := range days {
		cards = append(cards, roadmap.DailyCard{
			Date:      day,
			FocusArea: fmt.Sprintf("%s growth, day %d", personaType, i+1),
			Tasks: []roadmap.Task{
				{
					Title:         "Morning study block",
					Description:   fmt.Sprintf("Structured learning tuned to the %s archetype.", personaType),
					StartTime:     roadmap.ClockTime{Hour: 8},
					EndTime:       roadmap.ClockTime{Hour: 9, Minute: 30},
					TimeSlot:      roadmap.SlotMorning,
					EstimatedTime: "90 minutes",
					Priority:      1,
					Resources:     []string{"https://example.com/learn"},
				},
				{
					Title:         "Skill practice",
					Description:   "Hands-on exercises from the current module.",
					StartTime:     roadmap.ClockTime{Hour: 11},
					EndTime:       roadmap.ClockTime{Hour: 12},
					TimeSlot:      roadmap.SlotMorning,
					EstimatedTime: "60 minutes",
					Priority:      2,
					Resources:     []string{},
				},
				{
					Title:         "Project work",
					Description:   "Apply the morning's material to the running project.",
					StartTime:     roadmap.ClockTime{Hour: 14},
					EndTime:       roadmap.ClockTime{Hour: 16},
					TimeSlot:      roadmap.SlotAfternoon,
					EstimatedTime: "120 minutes",
					Priority:      2,
					Resources:     []string{},
				},
				{
					Title:         "Evening reflection",
					Description:   "Journal on progress and blockers.",
					StartTime:     roadmap.ClockTime{Hour: 21},
					EndTime:       roadmap.ClockTime{Hour: 21, Minute: 30},
					TimeSlot:      roadmap.SlotNight,
					EstimatedTime: "30 minutes",
					Priority:      4,
					Resources:     []string{},
				},
			},
			ReflectionPrompt: "What was the most useful thing you learned today?",
		})
	}

	return &roadmap.MonthPlan{
		Cards: cards,
		Goals: []string{
			fmt.Sprintf("Build core %s skills", personaType),
			"Sustain a daily practice habit",
		},
	}, nil
}

// PlanWeeklyMonth emits exactly four fixed-shape weeks.
func (p *Provider) PlanWeeklyMonth(ctx context.Context, personaType string, window roadmap.Window) (*roadmap.WeekPlan, error) {
	themes := []string{"Foundations", "Core techniques", "Integration", "Applied practice"}
	weeks := make([]roadmap.Week, 0, len(themes))
	for i, theme := range themes {
		weeks = append(weeks, roadmap.Week{
			WeekNumber: i + 1,
			Tasks: []roadmap.WeeklyTask{
				{
					TaskName:  fmt.Sprintf("%s: study sprint", theme),
					Resources: []string{"https://example.com/course"},
					Time:      "9:00 AM - 10:30 AM",
					Practice:  "1. Review the week's material\n2. Complete two exercises\n3. Summarize what you learned",
				},
				{
					TaskName:  fmt.Sprintf("%s: build session", theme),
					Resources: []string{},
					Time:      "7:00 PM - 8:00 PM",
					Practice:  "1. Extend the running project\n2. Note open questions for next week",
				},
			},
		})
	}

	return &roadmap.WeekPlan{
		Weeks: weeks,
		Goals: []string{
			fmt.Sprintf("Master the fundamentals as a %s learner", personaType),
			"Ship one small project by week four",
		},
	}, nil
}

// pickPersona hashes answer text onto the archetype vocabulary.
func pickPersona(answers []survey.Answer) survey.PersonaType {
	var sum int
	for _, a := range answers {
		sum += len(strings.TrimSpace(a.Answer))
	}
	return survey.AllPersonaTypes[sum%len(survey.AllPersonaTypes)]
}

func careersFor(personaType survey.PersonaType) []survey.CareerMatch {
	return []survey.CareerMatch{
		{Career: fmt.Sprintf("%s Specialist", personaType.DisplayName()), Confidence: 0.85, Description: "Strong direct fit."},
		{Career: "Product Manager", Confidence: 0.6, Description: "Generalist fallback."},
		{Career: "Consultant", Confidence: 0.5, Description: "Broad applicability."},
	}
}
