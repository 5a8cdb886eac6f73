package contract

import "github.com/alexanderramin/studyplan/internal/app"

type ErrorCode = app.ErrorCode

const (
	ErrInvalidGoalRequest    ErrorCode = app.ErrInvalidGoalRequest
	ErrNonPositiveTimeWindow ErrorCode = app.ErrNonPositiveTimeWindow
	ErrPlanNotFeasible       ErrorCode = app.ErrPlanNotFeasible
	ErrCyclicPrerequisite    ErrorCode = app.ErrCyclicPrerequisite
	ErrNotFound              ErrorCode = app.ErrNotFound
	ErrInternal              ErrorCode = app.ErrInternal
)

type AnalysisError = app.AnalysisError

type PlanError = app.PlanError
