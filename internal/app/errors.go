package app

import "strings"

type ErrorCode string

const (
	ErrInvalidGoalRequest    ErrorCode = "INVALID_GOAL_REQUEST"
	ErrNonPositiveTimeWindow ErrorCode = "NON_POSITIVE_TIME_WINDOW"
	ErrPlanNotFeasible       ErrorCode = "PLAN_NOT_FEASIBLE"
	ErrCyclicPrerequisite    ErrorCode = "CYCLIC_PREREQUISITE"
	ErrNotFound              ErrorCode = "NOT_FOUND"
	ErrInternal              ErrorCode = "INTERNAL_ERROR"
)

// AnalysisError is returned by goal analysis. Violations lists every
// validation failure when Code is ErrInvalidGoalRequest.
type AnalysisError struct {
	Code       ErrorCode
	Message    string
	Violations []string
	Err        error
}

func (e *AnalysisError) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if len(e.Violations) > 0 {
		msg += " (" + strings.Join(e.Violations, "; ") + ")"
	}
	return msg
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// PlanError is returned by plan generation. Reason and Suggestions are set
// when Code is ErrPlanNotFeasible.
type PlanError struct {
	Code        ErrorCode
	Message     string
	Reason      string
	Suggestions []string
	Err         error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error { return e.Err }
