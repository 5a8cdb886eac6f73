package scheduler

import "math"

// PlanningPolicy holds the tunable thresholds for analysis and plan
// generation. Values are owned by the caller; nothing here is global.
type PlanningPolicy struct {
	// FeasibleThreshold is the minimum score counted as feasible.
	FeasibleThreshold int
	// MinHorizonDays is the shortest plan the gate accepts.
	MinHorizonDays int
	// HourTolerance is how far required hours may exceed available hours
	// before the plan gate rejects the plan.
	HourTolerance float64
	// IncreasedHoursCap and BalancedHoursCap bound the daily hours proposed
	// by the alternative timelines.
	IncreasedHoursCap float64
	BalancedHoursCap  float64
	// StrictPrerequisites makes unresolvable prerequisite graphs an error
	// instead of falling back to catalog order.
	StrictPrerequisites bool
}

func DefaultPlanningPolicy() PlanningPolicy {
	return PlanningPolicy{
		FeasibleThreshold: 60,
		MinHorizonDays:    7,
		HourTolerance:     1.2,
		IncreasedHoursCap: 8,
		BalancedHoursCap:  6,
	}
}

// IsFeasible reports whether score meets the feasibility threshold.
func (p PlanningPolicy) IsFeasible(score int) bool {
	return score >= p.FeasibleThreshold
}

const hoursEpsilon = 1e-9

// ceilInt rounds up, ignoring float noise just above an integer.
func ceilInt(v float64) int {
	return int(math.Ceil(v - hoursEpsilon))
}
