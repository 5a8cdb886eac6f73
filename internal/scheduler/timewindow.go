package scheduler

import (
	"errors"
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// ErrNonPositiveTimeWindow is returned when the target date is not strictly
// after now.
var ErrNonPositiveTimeWindow = errors.New("target date must be in the future")

// DaysUntil returns the number of whole or partial days from now to target.
func DaysUntil(now, target time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}

// ComputeTimeConstraints derives the day and hour budget for a goal. A
// window of zero or fewer days is an error and nothing else is computed.
func ComputeTimeConstraints(now, target time.Time, dailyHours float64) (domain.TimeConstraints, error) {
	days := DaysUntil(now, target)
	if days <= 0 {
		return domain.TimeConstraints{}, ErrNonPositiveTimeWindow
	}
	return domain.TimeConstraints{
		TotalDays:   days,
		TotalHours:  float64(days) * dailyHours,
		DailyHours:  dailyHours,
		WeeklyHours: dailyHours * 7,
	}, nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysNeeded is the number of whole days required to cover requiredHours at
// dailyHours per day. Non-positive dailyHours yields 0.
func DaysNeeded(requiredHours, dailyHours float64) int {
	if dailyHours <= 0 || requiredHours <= 0 {
		return 0
	}
	return ceilInt(requiredHours / dailyHours)
}
