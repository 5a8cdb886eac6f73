package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// GateResult is the outcome of CheckPlanFeasibility. When both the horizon
// and the hour budget fail, Reason and Suggestions cover both.
type GateResult struct {
	Feasible       bool
	Reason         string
	Suggestions    []string
	RequiredHours  float64
	AvailableHours float64
}

// CheckPlanFeasibility is the plan-level gate run before allocation. It
// rejects horizons shorter than policy.MinHorizonDays and topic sets whose
// hours exceed the available budget by more than policy.HourTolerance.
// Topics are expected in priority order; the reduce-topics suggestion keeps
// a prefix of them.
func CheckPlanFeasibility(topics []domain.Topic, tc domain.TimeConstraints, policy PlanningPolicy) GateResult {
	required := domain.TotalHours(topics)
	available := float64(tc.TotalDays) * tc.DailyHours
	res := GateResult{
		Feasible:       true,
		RequiredHours:  required,
		AvailableHours: available,
	}

	var reasons []string

	if tc.TotalDays < policy.MinHorizonDays {
		res.Feasible = false
		reasons = append(reasons, fmt.Sprintf("plan horizon of %d days is shorter than the %d-day minimum",
			tc.TotalDays, policy.MinHorizonDays))
		res.Suggestions = append(res.Suggestions, fmt.Sprintf("Extend the target date by at least %d days",
			policy.MinHorizonDays-tc.TotalDays))
	}

	limit := available * policy.HourTolerance
	if required > limit+hoursEpsilon {
		res.Feasible = false
		reasons = append(reasons, fmt.Sprintf("%s hours of topics exceed the %s hours available (%s with tolerance)",
			FormatHours(required), FormatHours(available), FormatHours(limit)))
		res.Suggestions = append(res.Suggestions, budgetSuggestions(topics, tc, required, policy)...)
	}

	for i, r := range reasons {
		if i == 0 {
			res.Reason = r
			continue
		}
		res.Reason += "; " + r
	}
	return res
}

func budgetSuggestions(topics []domain.Topic, tc domain.TimeConstraints, required float64, policy PlanningPolicy) []string {
	var out []string

	if tc.DailyHours > 0 {
		days := ceilInt(required / (tc.DailyHours * policy.HourTolerance))
		if days > tc.TotalDays {
			out = append(out, fmt.Sprintf("Extend the target date by %d days (%d days total)", days-tc.TotalDays, days))
		}
	}

	if tc.TotalDays > 0 {
		hours := math.Ceil(required/(float64(tc.TotalDays)*policy.HourTolerance)*2) / 2
		if hours <= 24 {
			out = append(out, fmt.Sprintf("Increase daily study time to %s hours", FormatHours(hours)))
		}
	}

	limit := float64(tc.TotalDays) * tc.DailyHours * policy.HourTolerance
	keep := 0
	var sum float64
	for _, t := range topics {
		if sum+t.EstimatedHours > limit+hoursEpsilon {
			break
		}
		sum += t.EstimatedHours
		keep++
	}
	if keep > 0 {
		out = append(out, fmt.Sprintf("Reduce the plan to the top %d of %d topics", keep, len(topics)))
	} else {
		out = append(out, "Reduce the number of topics")
	}
	return out
}
