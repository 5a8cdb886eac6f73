package testutil

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

type TopicOption func(*domain.Topic)

func WithPriority(p int) TopicOption {
	return func(t *domain.Topic) {
		t.Priority = p
	}
}

func WithDifficulty(d domain.Difficulty) TopicOption {
	return func(t *domain.Topic) {
		t.Difficulty = d
	}
}

func WithHours(h float64) TopicOption {
	return func(t *domain.Topic) {
		t.EstimatedHours = h
	}
}

func WithPrerequisites(names ...string) TopicOption {
	return func(t *domain.Topic) {
		t.Prerequisites = names
	}
}

// NewTestTopic returns a medium, priority-3, 2-hour topic with no
// prerequisites.
func NewTestTopic(name string, opts ...TopicOption) domain.Topic {
	t := domain.Topic{
		ID:             uuid.NewString(),
		Name:           name,
		Description:    "Study " + name,
		Priority:       3,
		EstimatedHours: 2,
		Prerequisites:  []string{},
		Difficulty:     domain.DifficultyMedium,
		Category:       "test",
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

type AnalysisOption func(*domain.GoalAnalysisResult)

func WithUserID(id string) AnalysisOption {
	return func(a *domain.GoalAnalysisResult) {
		a.UserID = id
	}
}

func WithSubject(s string) AnalysisOption {
	return func(a *domain.GoalAnalysisResult) {
		a.Subject = s
	}
}

func WithGoalType(g domain.GoalType) AnalysisOption {
	return func(a *domain.GoalAnalysisResult) {
		a.GoalType = g
	}
}

func WithLevel(l domain.SkillLevel) AnalysisOption {
	return func(a *domain.GoalAnalysisResult) {
		a.CurrentLevel = l
	}
}

func WithSpecificTopics(names ...string) AnalysisOption {
	return func(a *domain.GoalAnalysisResult) {
		a.SpecificTopics = names
	}
}

// WithWindow sets the target date to days after now and the daily budget,
// keeping TimeConstraints consistent.
func WithWindow(now time.Time, days int, dailyHours float64) AnalysisOption {
	return func(a *domain.GoalAnalysisResult) {
		a.TargetDate = now.AddDate(0, 0, days)
		a.AvailableDailyHours = dailyHours
		a.TimeConstraints = domain.TimeConstraints{
			TotalDays:   days,
			TotalHours:  float64(days) * dailyHours,
			DailyHours:  dailyHours,
			WeeklyHours: dailyHours * 7,
		}
	}
}

func WithScore(score int, feasible bool) AnalysisOption {
	return func(a *domain.GoalAnalysisResult) {
		a.FeasibilityScore = score
		a.IsFeasible = feasible
	}
}

// NewTestAnalysis returns a stored-shape analysis for a 30-day, 2-hour
// intermediate job goal in SQL.
func NewTestAnalysis(opts ...AnalysisOption) *domain.GoalAnalysisResult {
	now := time.Now().UTC()
	a := &domain.GoalAnalysisResult{
		GoalID:                  uuid.NewString(),
		UserID:                  "user-1",
		GoalType:                domain.GoalJob,
		Subject:                 "sql",
		CurrentLevel:            domain.LevelIntermediate,
		FeasibilityScore:        100,
		IsFeasible:              true,
		EstimatedCompletionDate: now.AddDate(0, 0, 20),
		Recommendations:         []string{},
		TopicCount:              10,
		EstimatedHoursPerTopic:  4,
		CreatedAt:               now,
	}
	WithWindow(now, 30, 2)(a)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type PlanOption func(*domain.StudyPlan)

func WithPlanStatus(s domain.PlanStatus) PlanOption {
	return func(p *domain.StudyPlan) {
		p.Status = s
	}
}

func WithCreatedAt(t time.Time) PlanOption {
	return func(p *domain.StudyPlan) {
		p.CreatedAt = t
	}
}

// NewTestPlan returns a one-session plan for the given analysis.
func NewTestPlan(a *domain.GoalAnalysisResult, opts ...PlanOption) *domain.StudyPlan {
	now := time.Now().UTC()
	topic := NewTestTopic("Joins")
	p := &domain.StudyPlan{
		PlanID: uuid.NewString(),
		GoalID: a.GoalID,
		UserID: a.UserID,
		DailySessions: []domain.DailySession{{
			Day:  1,
			Date: now,
			Topics: []domain.SessionTopic{{
				TopicID:        topic.ID,
				TopicName:      topic.Name,
				AllocatedHours: topic.EstimatedHours,
			}},
			TotalHours: topic.EstimatedHours,
			FocusArea:  topic.Name,
		}},
		TotalDuration:       1,
		EstimatedCompletion: now,
		TopicSequence:       []string{topic.ID},
		Topics:              []domain.Topic{topic},
		Status:              domain.PlanActive,
		CreatedAt:           now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
