package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planStart = time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)

func TestAllocateSessions_SplitsTopicsAcrossDays(t *testing.T) {
	topics := []domain.Topic{
		makeTopic("A", 5, domain.DifficultyEasy, 3),
		makeTopic("B", 4, domain.DifficultyMedium, 2),
	}

	alloc := AllocateSessions(topics, planStart, 4, 2)

	require.Len(t, alloc.Sessions, 4)
	assert.Empty(t, alloc.Overflow)

	day1 := alloc.Sessions[0]
	assert.Equal(t, 1, day1.Day)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), day1.Date)
	require.Len(t, day1.Topics, 1)
	assert.Equal(t, "A", day1.Topics[0].TopicName)
	assert.Equal(t, 2.0, day1.Topics[0].AllocatedHours)
	assert.Equal(t, "A", day1.FocusArea)

	day2 := alloc.Sessions[1]
	require.Len(t, day2.Topics, 2)
	assert.Equal(t, 1.0, day2.Topics[0].AllocatedHours)
	assert.Equal(t, "B", day2.Topics[1].TopicName)
	assert.Equal(t, 1.0, day2.Topics[1].AllocatedHours)
	assert.Equal(t, 2.0, day2.TotalHours)
	assert.Equal(t, []string{"Complete 1 hours on A", "Complete 1 hours on B"}, day2.Goals)

	day3 := alloc.Sessions[2]
	assert.Equal(t, 1.0, day3.TotalHours)
	assert.Equal(t, "B", day3.FocusArea)

	day4 := alloc.Sessions[3]
	assert.Empty(t, day4.Topics)
	assert.Equal(t, FocusReview, day4.FocusArea)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), day4.Date)
}

func TestAllocateSessions_ActivitiesScaleWithHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0.5, 1},
		{1, 2},
		{1.5, 2},
		{2, 3},
		{3, 4},
		{6, 4},
	}
	for _, tc := range cases {
		topics := []domain.Topic{makeTopic("T", 3, domain.DifficultyMedium, tc.hours)}

		alloc := AllocateSessions(topics, planStart, 1, tc.hours)

		require.Len(t, alloc.Sessions[0].Topics, 1)
		assert.Len(t, alloc.Sessions[0].Topics[0].Activities, tc.want, "hours=%g", tc.hours)
	}
}

func TestAllocateSessions_LearningObjectivesByDifficulty(t *testing.T) {
	topics := []domain.Topic{
		makeTopic("Easy", 3, domain.DifficultyEasy, 1),
		makeTopic("Hard", 3, domain.DifficultyHard, 1),
	}

	alloc := AllocateSessions(topics, planStart, 1, 2)

	require.Len(t, alloc.Sessions[0].Topics, 2)
	assert.Contains(t, alloc.Sessions[0].Topics[0].LearningObjectives[1], "basics of Easy")
	assert.Contains(t, alloc.Sessions[0].Topics[1].LearningObjectives[1], "problems using Hard")
}

func TestAllocateSessions_OverflowReported(t *testing.T) {
	topics := []domain.Topic{
		makeTopic("A", 5, domain.DifficultyEasy, 4),
		makeTopic("B", 4, domain.DifficultyEasy, 4),
		makeTopic("C", 3, domain.DifficultyEasy, 2),
	}

	alloc := AllocateSessions(topics, planStart, 3, 2)

	require.Len(t, alloc.Overflow, 2)
	assert.Equal(t, TopicOverflow{TopicID: "id-B", TopicName: "B", Hours: 2}, alloc.Overflow[0])
	assert.Equal(t, TopicOverflow{TopicID: "id-C", TopicName: "C", Hours: 2}, alloc.Overflow[1])
	assert.Equal(t, 4.0, alloc.OverflowHours())
}

func TestAllocateSessions_SkipsZeroHourTopics(t *testing.T) {
	topics := []domain.Topic{
		makeTopic("empty", 5, domain.DifficultyEasy, 0),
		makeTopic("real", 4, domain.DifficultyEasy, 1),
	}

	alloc := AllocateSessions(topics, planStart, 2, 1)

	require.Len(t, alloc.Sessions[0].Topics, 1)
	assert.Equal(t, "real", alloc.Sessions[0].Topics[0].TopicName)
	assert.Empty(t, alloc.Overflow)
}

func TestAllocateSessions_NoTopics(t *testing.T) {
	alloc := AllocateSessions(nil, planStart, 3, 2)

	require.Len(t, alloc.Sessions, 3)
	for _, s := range alloc.Sessions {
		assert.Equal(t, FocusReview, s.FocusArea)
		assert.NotNil(t, s.Topics)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2", FormatHours(2))
	assert.Equal(t, "0.5", FormatHours(0.5))
	assert.Equal(t, "1.33", FormatHours(4.0/3))
}
