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

func TestSyllabusRepo_PutAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSyllabusRepo(db)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	doc := &domain.SyllabusDocument{
		ID:        "doc-1",
		UserID:    "user-1",
		Title:     "CS 101",
		Topics:    []string{"Recursion", "Sorting"},
		CreatedAt: created,
	}
	require.NoError(t, repo.Put(ctx, doc))

	got, err := repo.Get(ctx, "user-1", "doc-1")

	require.NoError(t, err)
	assert.Equal(t, "CS 101", got.Title)
	assert.Equal(t, []string{"Recursion", "Sorting"}, got.Topics)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestSyllabusRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSyllabusRepo(db)

	_, err := repo.Get(context.Background(), "user-1", "doc-x")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyllabusRepo_ListByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSyllabusRepo(db)
	ctx := context.Background()

	for i, title := range []string{"Old", "New"} {
		require.NoError(t, repo.Put(ctx, &domain.SyllabusDocument{
			ID:        title,
			UserID:    "user-1",
			Title:     title,
			Topics:    []string{"T"},
			CreatedAt: time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}))
	}

	docs, err := repo.ListByUser(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "New", docs[0].Title)

	none, err := repo.ListByUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
