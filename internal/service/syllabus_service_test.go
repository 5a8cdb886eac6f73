package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSyllabus_AssignsIDAndCleansTopics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := &domain.SyllabusDocument{
		UserID: "user-1",
		Title:  "Databases 101",
		Topics: []string{" Joins ", "Indexes", "", "joins"},
	}

	require.NoError(t, env.syllabus.Register(ctx, doc))

	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())
	stored, err := env.syllabus.Get(ctx, "user-1", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Joins", "Indexes"}, stored.Topics)
	assert.Equal(t, "Databases 101", stored.Title)

	ev := env.observed.last()
	assert.Equal(t, "register-syllabus", ev.Name)
	assert.Equal(t, 2, ev.Fields["topic_count"])
}

func TestRegisterSyllabus_Invalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.syllabus.RegisterAll(ctx, []*domain.SyllabusDocument{
		{UserID: "user-1", Title: "ok", Topics: []string{"Joins"}},
		{UserID: "", Title: " ", Topics: []string{" "}},
	})

	ae := requireAnalysisCode(t, err, app.ErrInvalidGoalRequest)
	assert.Equal(t, []string{
		"documents[1]: userId is required",
		"documents[1]: title is required",
		"documents[1]: at least one topic is required",
	}, ae.Violations)

	docs, err := env.syllabus.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, docs, "nothing is stored when any document is invalid")
}

func TestRegisterSyllabus_RollbackOnSecondWrite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	failUoW := &testutil.FailOnNthExecUoW{
		DB:     env.db,
		FailOn: 2,
		Err:    fmt.Errorf("injected syllabus write failure"),
	}
	env.rebuild(failUoW)

	err := env.syllabus.RegisterAll(ctx, []*domain.SyllabusDocument{
		{UserID: "user-1", Title: "Part 1", Topics: []string{"Joins"}},
		{UserID: "user-1", Title: "Part 2", Topics: []string{"Indexes"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected syllabus write failure")
	assert.Equal(t, int32(2), failUoW.Execs.Load())

	docs, err := env.syllabus.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, docs, "first document must be rolled back")
}

func TestSyllabusGet_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.syllabus.Get(context.Background(), "user-1", "missing")

	requirePlanCode(t, err, app.ErrNotFound)
}
