package catalog

import (
	"math"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Estimator derives topic counts and per-topic hours from goal type and skill
// level.
type Estimator struct {
	DefaultBaseCount     int
	CountMultipliers     map[domain.GoalType]float64
	LevelBaseHours       map[domain.SkillLevel]float64
	GoalHoursMultipliers map[domain.GoalType]float64
}

func DefaultEstimator() Estimator {
	return Estimator{
		DefaultBaseCount: 15,
		CountMultipliers: map[domain.GoalType]float64{
			domain.GoalExam:      1.2,
			domain.GoalInterview: 0.8,
			domain.GoalProject:   0.6,
			domain.GoalJob:       1.0,
		},
		LevelBaseHours: map[domain.SkillLevel]float64{
			domain.LevelBeginner:     4,
			domain.LevelIntermediate: 3,
			domain.LevelAdvanced:     2,
		},
		GoalHoursMultipliers: map[domain.GoalType]float64{
			domain.GoalExam:      1.3,
			domain.GoalInterview: 1.2,
			domain.GoalProject:   1.5,
			domain.GoalJob:       1.1,
		},
	}
}

// TopicCount returns ceil(base × goal multiplier). Unknown goal types use 1.0.
func (e Estimator) TopicCount(base int, goal domain.GoalType) int {
	return ceilInt(float64(base) * multiplier(e.CountMultipliers, goal))
}

// HoursPerTopic returns ceil(level base hours × goal multiplier). Unknown
// levels fall back to the intermediate base.
func (e Estimator) HoursPerTopic(level domain.SkillLevel, goal domain.GoalType) int {
	base, ok := e.LevelBaseHours[level]
	if !ok {
		base = e.LevelBaseHours[domain.LevelIntermediate]
	}
	return ceilInt(base * multiplier(e.GoalHoursMultipliers, goal))
}

func multiplier(m map[domain.GoalType]float64, goal domain.GoalType) float64 {
	if v, ok := m[goal]; ok {
		return v
	}
	return 1.0
}

// ceilInt rounds up, ignoring float noise just above an integer
// (15 × 1.2 must be 18, not 19).
func ceilInt(v float64) int {
	return int(math.Ceil(v - 1e-9))
}
