package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFeasibility_Adjustments(t *testing.T) {
	cases := []struct {
		name      string
		available float64
		required  float64
		level     domain.SkillLevel
		want      int
	}{
		{"beginner shortfall", 60, 90, domain.LevelBeginner, 48},
		{"intermediate deep shortfall", 15, 40, domain.LevelIntermediate, 30},
		{"intermediate mild shortfall", 85, 100, domain.LevelIntermediate, 85},
		{"just under 0.8 ratio", 79, 100, domain.LevelIntermediate, 63},
		{"beginner exact fit", 100, 100, domain.LevelBeginner, 90},
		{"beginner surplus bonus", 120, 100, domain.LevelBeginner, 100},
		{"advanced boost capped", 100, 100, domain.LevelAdvanced, 100},
		{"advanced shortfall", 70, 100, domain.LevelAdvanced, 67},
		{"nothing required", 10, 0, domain.LevelBeginner, 100},
		{"nothing available", 0, 10, domain.LevelAdvanced, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScoreFeasibility(tc.available, tc.required, tc.level))
		})
	}
}

func TestScoreFeasibility_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	levels := []domain.SkillLevel{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced}
	policy := DefaultPlanningPolicy()

	for trial := 0; trial < 200; trial++ {
		available := rng.Float64() * 500
		required := rng.Float64() * 500
		score := ScoreFeasibility(available, required, levels[rng.Intn(3)])

		assert.GreaterOrEqual(t, score, 0, "trial %d", trial)
		assert.LessOrEqual(t, score, 100, "trial %d", trial)
		assert.Equal(t, score >= 60, policy.IsFeasible(score), "trial %d", trial)
	}
}

func TestGenerateAlternatives_ScenarioA(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	tc := domain.TimeConstraints{TotalDays: 30, TotalHours: 60, DailyHours: 2, WeeklyHours: 14}

	alts := GenerateAlternatives(now, tc, 90, DefaultPlanningPolicy())

	require.Len(t, alts, 3)
	assert.Equal(t, "Extended Timeline", alts[0].Description)
	assert.Equal(t, 45, alts[0].AdjustedTotalDays)
	assert.Equal(t, 2.0, alts[0].AdjustedDailyHours)
	assert.Equal(t, now.AddDate(0, 0, 45), alts[0].AdjustedTargetDate)

	assert.Equal(t, "Increased Daily Hours", alts[1].Description)
	assert.Equal(t, 30, alts[1].AdjustedTotalDays)
	assert.Equal(t, 3.0, alts[1].AdjustedDailyHours)

	assert.Equal(t, "Balanced Approach", alts[2].Description)
	assert.Equal(t, 38, alts[2].AdjustedTotalDays)
	assert.Equal(t, 2.5, alts[2].AdjustedDailyHours)

	for _, a := range alts {
		assert.Equal(t, 100, a.FeasibilityScore, a.Description)
		assert.NotEmpty(t, a.Reasoning)
	}
}

func TestGenerateAlternatives_SortedByScore(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	tc := domain.TimeConstraints{TotalDays: 10, TotalHours: 10, DailyHours: 1, WeeklyHours: 7}

	alts := GenerateAlternatives(now, tc, 100, DefaultPlanningPolicy())

	require.Len(t, alts, 3)
	assert.Equal(t, "Balanced Approach", alts[0].Description)
	assert.Equal(t, 13, alts[0].FeasibilityScore)
	assert.Equal(t, "Extended Timeline", alts[1].Description)
	assert.Equal(t, "Increased Daily Hours", alts[2].Description)
	assert.Equal(t, 12, alts[1].FeasibilityScore)
	assert.Equal(t, 12, alts[2].FeasibilityScore)
}

func TestGenerateAlternatives_HoursCapped(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	tc := domain.TimeConstraints{TotalDays: 10, TotalHours: 70, DailyHours: 7, WeeklyHours: 49}

	alts := GenerateAlternatives(now, tc, 500, DefaultPlanningPolicy())

	byName := map[string]domain.AlternativeTimeline{}
	for _, a := range alts {
		byName[a.Description] = a
	}
	assert.Equal(t, 8.0, byName["Increased Daily Hours"].AdjustedDailyHours)
	assert.Equal(t, 6.0, byName["Balanced Approach"].AdjustedDailyHours)
}

func TestGenerateAlternatives_ScoresReproducible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		days := rng.Intn(120) + 1
		hours := float64(rng.Intn(48)+1) / 4
		tc := domain.TimeConstraints{TotalDays: days, TotalHours: float64(days) * hours, DailyHours: hours}
		required := float64(rng.Intn(400) + 1)

		alts := GenerateAlternatives(now, tc, required, DefaultPlanningPolicy())

		require.Len(t, alts, 3, "trial %d", trial)
		for i, a := range alts {
			recomputed := ScoreFeasibility(float64(a.AdjustedTotalDays)*a.AdjustedDailyHours, required, domain.LevelIntermediate)
			assert.Equal(t, recomputed, a.FeasibilityScore, "trial %d: %s", trial, a.Description)
			if i > 0 {
				assert.GreaterOrEqual(t, alts[i-1].FeasibilityScore, a.FeasibilityScore, "trial %d", trial)
			}
		}
	}
}
