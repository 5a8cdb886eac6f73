package contract

import (
	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/importer"
)

type AnalyzeGoalRequest = app.AnalyzeGoalRequest

func NewAnalyzeGoalRequest(goal importer.GoalRequest) AnalyzeGoalRequest {
	return app.NewAnalyzeGoalRequest(goal)
}
