package repository

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Records are keyed by (userID, recordID). Put overwrites an existing record
// with the same key; the last write wins.

type GoalAnalysisRepo interface {
	Put(ctx context.Context, r *domain.GoalAnalysisResult) error
	Get(ctx context.Context, userID, goalID string) (*domain.GoalAnalysisResult, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.GoalAnalysisResult, error)
}

type StudyPlanRepo interface {
	Put(ctx context.Context, p *domain.StudyPlan) error
	Get(ctx context.Context, userID, planID string) (*domain.StudyPlan, error)
	ListByGoal(ctx context.Context, userID, goalID string) ([]*domain.StudyPlan, error)
}

type SyllabusRepo interface {
	Put(ctx context.Context, d *domain.SyllabusDocument) error
	Get(ctx context.Context, userID, docID string) (*domain.SyllabusDocument, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.SyllabusDocument, error)
}
