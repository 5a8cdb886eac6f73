package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyPlanRepo_PutAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	analyses := NewSQLiteGoalAnalysisRepo(db)
	plans := NewSQLiteStudyPlanRepo(db)
	ctx := context.Background()

	a := testutil.NewTestAnalysis()
	require.NoError(t, analyses.Put(ctx, a))
	p := testutil.NewTestPlan(a)
	p.Milestones = []domain.Milestone{{Day: 1, Description: "Final assessment: plan complete", Topics: []string{"Joins"}, CheckpointType: domain.CheckpointAssessment}}
	p.Warnings = []string{"2 hours of Joins did not fit"}
	require.NoError(t, plans.Put(ctx, p))

	got, err := plans.Get(ctx, a.UserID, p.PlanID)

	require.NoError(t, err)
	assert.Equal(t, p.GoalID, got.GoalID)
	assert.Equal(t, domain.PlanActive, got.Status)
	assert.Equal(t, p.TopicSequence, got.TopicSequence)
	require.Len(t, got.DailySessions, 1)
	assert.Equal(t, "Joins", got.DailySessions[0].FocusArea)
	assert.Equal(t, p.Milestones, got.Milestones)
	assert.Equal(t, p.Warnings, got.Warnings)
}

func TestStudyPlanRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLiteStudyPlanRepo(db)

	_, err := plans.Get(context.Background(), "user-1", "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudyPlanRepo_Put_RequiresStoredAnalysis(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLiteStudyPlanRepo(db)

	a := testutil.NewTestAnalysis()
	err := plans.Put(context.Background(), testutil.NewTestPlan(a))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "storing study plan")
}

func TestStudyPlanRepo_ListByGoal(t *testing.T) {
	db := testutil.NewTestDB(t)
	analyses := NewSQLiteGoalAnalysisRepo(db)
	plans := NewSQLiteStudyPlanRepo(db)
	ctx := context.Background()

	a := testutil.NewTestAnalysis()
	b := testutil.NewTestAnalysis()
	require.NoError(t, analyses.Put(ctx, a))
	require.NoError(t, analyses.Put(ctx, b))

	first := testutil.NewTestPlan(a, testutil.WithCreatedAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	second := testutil.NewTestPlan(a,
		testutil.WithCreatedAt(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
		testutil.WithPlanStatus(domain.PlanPaused))
	unrelated := testutil.NewTestPlan(b)
	for _, p := range []*domain.StudyPlan{first, second, unrelated} {
		require.NoError(t, plans.Put(ctx, p))
	}

	list, err := plans.ListByGoal(ctx, a.UserID, a.GoalID)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.PlanID, list[0].PlanID)
	assert.Equal(t, domain.PlanPaused, list[0].Status)
	assert.Equal(t, first.PlanID, list[1].PlanID)
}
