package domain

import "time"

// StudyGoal is a validated learning goal. It is never mutated after analysis.
type StudyGoal struct {
	UserID              string     `json:"userId"`
	GoalType            GoalType   `json:"goalType"`
	Subject             string     `json:"subject"`
	TargetDate          time.Time  `json:"targetDate"`
	AvailableDailyHours float64    `json:"availableDailyHours"`
	CurrentLevel        SkillLevel `json:"currentLevel"`
	SpecificTopics      []string   `json:"specificTopics,omitempty"`
}

type TimeConstraints struct {
	TotalDays   int     `json:"totalDays"`
	TotalHours  float64 `json:"totalHours"`
	DailyHours  float64 `json:"dailyHours"`
	WeeklyHours float64 `json:"weeklyHours"`
}

type AlternativeTimeline struct {
	Description        string    `json:"description"`
	AdjustedTargetDate time.Time `json:"adjustedTargetDate"`
	AdjustedDailyHours float64   `json:"adjustedDailyHours"`
	AdjustedTotalDays  int       `json:"adjustedTotalDays"`
	FeasibilityScore   int       `json:"feasibilityScore"`
	Reasoning          string    `json:"reasoning"`
}

// GoalAnalysisResult is created once per analysis and referenced by GoalID
// from later plan generation calls.
type GoalAnalysisResult struct {
	GoalID                  string                `json:"goalId"`
	UserID                  string                `json:"userId"`
	GoalType                GoalType              `json:"goalType"`
	Subject                 string                `json:"subject"`
	TargetDate              time.Time             `json:"targetDate"`
	AvailableDailyHours     float64               `json:"availableDailyHours"`
	CurrentLevel            SkillLevel            `json:"currentLevel"`
	SpecificTopics          []string              `json:"specificTopics,omitempty"`
	TimeConstraints         TimeConstraints       `json:"timeConstraints"`
	FeasibilityScore        int                   `json:"feasibilityScore"`
	IsFeasible              bool                  `json:"isFeasible"`
	EstimatedCompletionDate time.Time             `json:"estimatedCompletionDate"`
	Recommendations         []string              `json:"recommendations"`
	Alternatives            []AlternativeTimeline `json:"alternatives,omitempty"`
	TopicCount              int                   `json:"topicCount"`
	EstimatedHoursPerTopic  int                   `json:"estimatedHoursPerTopic"`
	CreatedAt               time.Time             `json:"createdAt"`
}

// Goal reconstructs the submitted goal from the echoed fields.
func (r *GoalAnalysisResult) Goal() StudyGoal {
	return StudyGoal{
		UserID:              r.UserID,
		GoalType:            r.GoalType,
		Subject:             r.Subject,
		TargetDate:          r.TargetDate,
		AvailableDailyHours: r.AvailableDailyHours,
		CurrentLevel:        r.CurrentLevel,
		SpecificTopics:      r.SpecificTopics,
	}
}
