package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLiteGoalAnalysisRepo struct {
	db db.DBTX
}

func NewSQLiteGoalAnalysisRepo(conn db.DBTX) *SQLiteGoalAnalysisRepo {
	return &SQLiteGoalAnalysisRepo{db: conn}
}

func (r *SQLiteGoalAnalysisRepo) Put(ctx context.Context, a *domain.GoalAnalysisResult) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding goal analysis: %w", err)
	}
	query := `INSERT INTO goal_analyses (user_id, id, subject, goal_type, feasibility_score,
		is_feasible, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, id) DO UPDATE SET
			subject = excluded.subject,
			goal_type = excluded.goal_type,
			feasibility_score = excluded.feasibility_score,
			is_feasible = excluded.is_feasible,
			payload = excluded.payload,
			created_at = excluded.created_at`
	_, err = r.db.ExecContext(ctx, query,
		a.UserID,
		a.GoalID,
		a.Subject,
		string(a.GoalType),
		a.FeasibilityScore,
		boolToInt(a.IsFeasible),
		string(payload),
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("storing goal analysis: %w", err)
	}
	return nil
}

func (r *SQLiteGoalAnalysisRepo) Get(ctx context.Context, userID, goalID string) (*domain.GoalAnalysisResult, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT payload FROM goal_analyses WHERE user_id = ? AND id = ?`, userID, goalID)
	var a domain.GoalAnalysisResult
	if err := scanPayload(row, "goal analysis", &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByUser returns the user's analyses, newest first.
func (r *SQLiteGoalAnalysisRepo) ListByUser(ctx context.Context, userID string) ([]*domain.GoalAnalysisResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM goal_analyses WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goal analyses: %w", err)
	}
	var out []*domain.GoalAnalysisResult
	err = scanPayloads(rows, "goal analysis", func(data []byte) error {
		var a domain.GoalAnalysisResult
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		out = append(out, &a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
