package contract

import "github.com/alexanderramin/studyplan/internal/app"

type GeneratePlanRequest = app.GeneratePlanRequest

func NewGeneratePlanRequest(userID, goalID string) GeneratePlanRequest {
	return app.NewGeneratePlanRequest(userID, goalID)
}
