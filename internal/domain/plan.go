package domain

import "time"

type SessionTopic struct {
	TopicID            string   `json:"topicId"`
	TopicName          string   `json:"topicName"`
	AllocatedHours     float64  `json:"allocatedHours"`
	Activities         []string `json:"activities"`
	LearningObjectives []string `json:"learningObjectives"`
}

type DailySession struct {
	Day        int            `json:"day"`
	Date       time.Time      `json:"date"`
	Topics     []SessionTopic `json:"topics"`
	TotalHours float64        `json:"totalHours"`
	FocusArea  string         `json:"focusArea"`
	Goals      []string       `json:"goals"`
}

type Milestone struct {
	Day            int            `json:"day"`
	Description    string         `json:"description"`
	Topics         []string       `json:"topics"`
	CheckpointType CheckpointType `json:"checkpointType"`
}

// StudyPlan is generated once from a GoalAnalysisResult. Regenerating
// produces a new plan with a new PlanID.
type StudyPlan struct {
	PlanID              string         `json:"planId"`
	GoalID              string         `json:"goalId"`
	UserID              string         `json:"userId"`
	DailySessions       []DailySession `json:"dailySessions"`
	TotalDuration       int            `json:"totalDuration"`
	EstimatedCompletion time.Time      `json:"estimatedCompletion"`
	TopicSequence       []string       `json:"topicSequence"`
	Topics              []Topic        `json:"topics"`
	Milestones          []Milestone    `json:"milestones"`
	Status              PlanStatus     `json:"status"`
	Warnings            []string       `json:"warnings,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
}

// AllocatedHoursByTopic sums allocated hours per topic ID across all sessions.
func (p *StudyPlan) AllocatedHoursByTopic() map[string]float64 {
	out := make(map[string]float64, len(p.TopicSequence))
	for _, s := range p.DailySessions {
		for _, st := range s.Topics {
			out[st.TopicID] += st.AllocatedHours
		}
	}
	return out
}

// TopicNames returns topic names in sequence order.
func (p *StudyPlan) TopicNames() []string {
	byID := make(map[string]string, len(p.Topics))
	for _, t := range p.Topics {
		byID[t.ID] = t.Name
	}
	names := make([]string, 0, len(p.TopicSequence))
	for _, id := range p.TopicSequence {
		names = append(names, byID[id])
	}
	return names
}
