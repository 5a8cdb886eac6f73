package app

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/domain"
)

type AnalyzeGoalUseCase interface {
	Analyze(ctx context.Context, req AnalyzeGoalRequest) (*domain.GoalAnalysisResult, error)
}

type GeneratePlanUseCase interface {
	Generate(ctx context.Context, req GeneratePlanRequest) (*domain.StudyPlan, error)
}

type RegisterSyllabusUseCase interface {
	Register(ctx context.Context, doc *domain.SyllabusDocument) error
}
