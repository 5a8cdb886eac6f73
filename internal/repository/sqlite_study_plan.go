package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLiteStudyPlanRepo struct {
	db db.DBTX
}

func NewSQLiteStudyPlanRepo(conn db.DBTX) *SQLiteStudyPlanRepo {
	return &SQLiteStudyPlanRepo{db: conn}
}

func (r *SQLiteStudyPlanRepo) Put(ctx context.Context, p *domain.StudyPlan) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding study plan: %w", err)
	}
	status := p.Status
	if status == "" {
		status = domain.PlanActive
	}
	query := `INSERT INTO study_plans (user_id, id, goal_id, status, total_days, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, id) DO UPDATE SET
			goal_id = excluded.goal_id,
			status = excluded.status,
			total_days = excluded.total_days,
			payload = excluded.payload,
			created_at = excluded.created_at`
	_, err = r.db.ExecContext(ctx, query,
		p.UserID,
		p.PlanID,
		p.GoalID,
		string(status),
		p.TotalDuration,
		string(payload),
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("storing study plan: %w", err)
	}
	return nil
}

func (r *SQLiteStudyPlanRepo) Get(ctx context.Context, userID, planID string) (*domain.StudyPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT payload FROM study_plans WHERE user_id = ? AND id = ?`, userID, planID)
	var p domain.StudyPlan
	if err := scanPayload(row, "study plan", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByGoal returns every plan generated for a goal, newest first.
func (r *SQLiteStudyPlanRepo) ListByGoal(ctx context.Context, userID, goalID string) ([]*domain.StudyPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM study_plans WHERE user_id = ? AND goal_id = ?
		ORDER BY created_at DESC, id`, userID, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing study plans: %w", err)
	}
	var out []*domain.StudyPlan
	err = scanPayloads(rows, "study plan", func(data []byte) error {
		var p domain.StudyPlan
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		out = append(out, &p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
