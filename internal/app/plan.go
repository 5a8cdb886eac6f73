package app

import "time"

type GeneratePlanRequest struct {
	UserID              string
	GoalID              string
	SyllabusDocumentIDs []string
	CustomTopics        []string
	Now                 *time.Time
}

func NewGeneratePlanRequest(userID, goalID string) GeneratePlanRequest {
	return GeneratePlanRequest{UserID: userID, GoalID: goalID}
}
