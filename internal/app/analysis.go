package app

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/importer"
)

type AnalyzeGoalRequest struct {
	Goal importer.GoalRequest
	Now  *time.Time
}

func NewAnalyzeGoalRequest(goal importer.GoalRequest) AnalyzeGoalRequest {
	return AnalyzeGoalRequest{Goal: goal}
}
