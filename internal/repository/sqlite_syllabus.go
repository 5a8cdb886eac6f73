package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteSyllabusRepo stores extracted syllabus topic lists. Topics are kept
// as a JSON array column rather than a full payload.
type SQLiteSyllabusRepo struct {
	db db.DBTX
}

func NewSQLiteSyllabusRepo(conn db.DBTX) *SQLiteSyllabusRepo {
	return &SQLiteSyllabusRepo{db: conn}
}

func (r *SQLiteSyllabusRepo) Put(ctx context.Context, d *domain.SyllabusDocument) error {
	topics, err := json.Marshal(d.Topics)
	if err != nil {
		return fmt.Errorf("encoding syllabus topics: %w", err)
	}
	query := `INSERT INTO syllabus_documents (user_id, id, title, topics, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, id) DO UPDATE SET
			title = excluded.title,
			topics = excluded.topics,
			created_at = excluded.created_at`
	_, err = r.db.ExecContext(ctx, query, d.UserID, d.ID, d.Title, string(topics), formatTime(d.CreatedAt))
	if err != nil {
		return fmt.Errorf("storing syllabus document: %w", err)
	}
	return nil
}

func (r *SQLiteSyllabusRepo) Get(ctx context.Context, userID, docID string) (*domain.SyllabusDocument, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, id, title, topics, created_at FROM syllabus_documents
		WHERE user_id = ? AND id = ?`, userID, docID)
	d, err := scanSyllabus(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("syllabus document: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning syllabus document: %w", err)
	}
	return d, nil
}

func (r *SQLiteSyllabusRepo) ListByUser(ctx context.Context, userID string) ([]*domain.SyllabusDocument, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, id, title, topics, created_at FROM syllabus_documents
		WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing syllabus documents: %w", err)
	}
	defer rows.Close()

	var out []*domain.SyllabusDocument
	for rows.Next() {
		d, err := scanSyllabus(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning syllabus document: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSyllabus(s scanner) (*domain.SyllabusDocument, error) {
	var (
		d         domain.SyllabusDocument
		topics    string
		createdAt string
	)
	if err := s.Scan(&d.UserID, &d.ID, &d.Title, &topics, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(topics), &d.Topics); err != nil {
		return nil, fmt.Errorf("decoding topics: %w", err)
	}
	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		d.CreatedAt = t
	}
	return &d, nil
}
