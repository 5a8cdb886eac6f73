package scheduler

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// GenerateAlternatives proposes three re-parameterized timelines for an
// infeasible goal: a longer deadline, more hours per day, and a mix of both.
// Each is rescored at intermediate level regardless of the learner's level.
// The result is sorted by score, highest first; ties keep the order above.
func GenerateAlternatives(now time.Time, tc domain.TimeConstraints, requiredHours float64, policy PlanningPolicy) []domain.AlternativeTimeline {
	extendedDays := ceilInt(float64(tc.TotalDays) * 1.5)
	increasedHours := math.Min(tc.DailyHours*1.5, policy.IncreasedHoursCap)
	balancedDays := ceilInt(float64(tc.TotalDays) * 1.25)
	balancedHours := math.Min(tc.DailyHours*1.25, policy.BalancedHoursCap)

	alts := []domain.AlternativeTimeline{
		alternative(now, "Extended Timeline", extendedDays, tc.DailyHours, requiredHours,
			fmt.Sprintf("Keep %s hours per day and move the target date out to %d days.",
				FormatHours(tc.DailyHours), extendedDays)),
		alternative(now, "Increased Daily Hours", tc.TotalDays, increasedHours, requiredHours,
			fmt.Sprintf("Keep the %d-day deadline and study %s hours per day.",
				tc.TotalDays, FormatHours(increasedHours))),
		alternative(now, "Balanced Approach", balancedDays, balancedHours, requiredHours,
			fmt.Sprintf("Extend to %d days and study %s hours per day.",
				balancedDays, FormatHours(balancedHours))),
	}

	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].FeasibilityScore > alts[j].FeasibilityScore
	})
	return alts
}

func alternative(now time.Time, desc string, days int, dailyHours, requiredHours float64, reasoning string) domain.AlternativeTimeline {
	available := float64(days) * dailyHours
	return domain.AlternativeTimeline{
		Description:        desc,
		AdjustedTargetDate: now.AddDate(0, 0, days),
		AdjustedDailyHours: dailyHours,
		AdjustedTotalDays:  days,
		FeasibilityScore:   ScoreFeasibility(available, requiredHours, domain.LevelIntermediate),
		Reasoning: fmt.Sprintf("%s That gives %s of the %s hours required.",
			reasoning, FormatHours(available), FormatHours(requiredHours)),
	}
}
