package service

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

// recommendationInput bundles everything the recommendation rules look at.
type recommendationInput struct {
	Goal          domain.StudyGoal
	Constraints   domain.TimeConstraints
	Topics        catalog.TopicSet
	RequiredHours float64
	Feasible      bool
}

type recommendationRule func(in recommendationInput) []string

// recommendationRules run in order; each contributes zero or more lines.
var recommendationRules = []recommendationRule{
	capacityRecommendations,
	dailyLoadRecommendations,
	levelRecommendations,
	goalTypeRecommendations,
	coverageRecommendations,
}

// buildRecommendations returns the advice lines for an analysis. Output is
// deterministic for a given input.
func buildRecommendations(in recommendationInput) []string {
	out := []string{}
	for _, rule := range recommendationRules {
		out = append(out, rule(in)...)
	}
	return out
}

func capacityRecommendations(in recommendationInput) []string {
	available := in.Constraints.TotalHours
	if in.RequiredHours <= 0 {
		return []string{"No study hours are required for this goal; add specific topics to build a plan."}
	}
	ratio := available / in.RequiredHours

	if !in.Feasible {
		out := []string{"The current timeline is tight; consider one of the alternative timelines."}
		if ratio < 0.5 {
			out = append(out, fmt.Sprintf(
				"Your %s available hours cover less than half of the %s estimated; focus on the highest-priority topics first.",
				scheduler.FormatHours(available), scheduler.FormatHours(in.RequiredHours)))
		}
		return out
	}
	if ratio >= 1.2 {
		return []string{"You have spare capacity; use it for practice projects or deeper coverage of hard topics."}
	}
	return []string{"Your timeline is realistic; keep to the daily schedule to finish on time."}
}

func dailyLoadRecommendations(in recommendationInput) []string {
	switch daily := in.Constraints.DailyHours; {
	case daily > 6:
		return []string{"More than 6 hours a day is hard to sustain; schedule breaks and at least one rest day a week."}
	case daily < 1:
		return []string{"Short daily sessions work best when each one targets a single topic."}
	}
	return nil
}

func levelRecommendations(in recommendationInput) []string {
	switch in.Goal.CurrentLevel {
	case domain.LevelBeginner:
		return []string{"Start with the fundamentals and do not skip prerequisite topics."}
	case domain.LevelAdvanced:
		return []string{"Skim topics you already know and spend the saved time on advanced material."}
	}
	return nil
}

func goalTypeRecommendations(in recommendationInput) []string {
	switch in.Goal.GoalType {
	case domain.GoalExam:
		return []string{"Reserve the final days before the exam for practice tests and review."}
	case domain.GoalInterview:
		return []string{"Practice explaining solutions out loud and schedule mock interviews."}
	case domain.GoalJob:
		return []string{"Build portfolio pieces that demonstrate the skills employers ask for."}
	case domain.GoalProject:
		return []string{"Apply each topic to your project as soon as you finish it."}
	}
	return nil
}

func coverageRecommendations(in recommendationInput) []string {
	set := in.Topics
	switch {
	case set.Source == catalog.SourceGeneric:
		return []string{fmt.Sprintf(
			"No curated topic list exists for %q; provide specific topics for a more accurate plan.", in.Goal.Subject)}
	case set.EstimatedCount > set.TopicCount():
		return []string{fmt.Sprintf(
			"The %s catalog covers %d of the %d topics estimated for this goal; add specific topics to cover the rest.",
			set.Subject, set.TopicCount(), set.EstimatedCount)}
	}
	return nil
}
