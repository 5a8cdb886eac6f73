package service

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type GoalAnalysisService interface {
	app.AnalyzeGoalUseCase
	Get(ctx context.Context, userID, goalID string) (*domain.GoalAnalysisResult, error)
	List(ctx context.Context, userID string) ([]*domain.GoalAnalysisResult, error)
}

type StudyPlanService interface {
	app.GeneratePlanUseCase
	Get(ctx context.Context, userID, planID string) (*domain.StudyPlan, error)
	ListByGoal(ctx context.Context, userID, goalID string) ([]*domain.StudyPlan, error)
}

type SyllabusService interface {
	app.RegisterSyllabusUseCase
	// RegisterAll stores every document or none of them.
	RegisterAll(ctx context.Context, docs []*domain.SyllabusDocument) error
	Get(ctx context.Context, userID, docID string) (*domain.SyllabusDocument, error)
	List(ctx context.Context, userID string) ([]*domain.SyllabusDocument, error)
}

type CatalogService interface {
	Subjects() []catalog.SubjectSummary
	Preview(req catalog.TopicRequest) (catalog.TopicSet, error)
}
