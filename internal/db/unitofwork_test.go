package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertSyllabus(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO syllabus_documents (user_id, id, title, topics, created_at) VALUES (?, ?, ?, ?, ?)`,
		"u1", id, "Course", `["A"]`, "2026-01-01T00:00:00Z")
	return err
}

func syllabusExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM syllabus_documents WHERE id = ?`, id).Scan(&n))
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSyllabus(ctx, tx, "s1")
	})

	require.NoError(t, err)
	assert.True(t, syllabusExists(t, database, "s1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSyllabus(ctx, tx, "s2"); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, syllabusExists(t, database, "s2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSyllabus(ctx, tx, "s3")
			panic("boom")
		})
	})

	assert.False(t, syllabusExists(t, database, "s3"), "row should not exist after panic rollback")
}

func TestWithinTx_MultipleWritesAtomic(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSyllabus(ctx, tx, "s4"); err != nil {
			return err
		}
		return insertSyllabus(ctx, tx, "s4")
	})

	require.Error(t, err, "duplicate key should fail the second write")
	assert.False(t, syllabusExists(t, database, "s4"), "first write must be rolled back too")
}
