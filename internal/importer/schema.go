package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// GoalRequest is the raw goal analysis input, as submitted on the command
// line or in a JSON goal file. Nothing here is trusted until validated.
type GoalRequest struct {
	UserID              string   `json:"userId"`
	GoalType            string   `json:"goalType"`
	Subject             string   `json:"subject"`
	TargetDate          string   `json:"targetDate"`
	AvailableDailyHours float64  `json:"availableDailyHours"`
	CurrentLevel        string   `json:"currentLevel"`
	SpecificTopics      []string `json:"specificTopics,omitempty"`
}

// LoadGoalRequest reads and parses a goal request JSON file.
func LoadGoalRequest(path string) (*GoalRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req GoalRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing goal file: %w", err)
	}
	return &req, nil
}
