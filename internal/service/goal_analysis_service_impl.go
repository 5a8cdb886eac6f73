package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/google/uuid"
)

type goalAnalysisService struct {
	analyses repository.GoalAnalysisRepo
	topics   catalog.Provider
	policy   scheduler.PlanningPolicy
	observer UseCaseObserver
}

func NewGoalAnalysisService(
	analyses repository.GoalAnalysisRepo,
	topics catalog.Provider,
	policy scheduler.PlanningPolicy,
	observers ...UseCaseObserver,
) GoalAnalysisService {
	return &goalAnalysisService{
		analyses: analyses,
		topics:   topics,
		policy:   policy,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalAnalysisService) Analyze(ctx context.Context, req app.AnalyzeGoalRequest) (result *domain.GoalAnalysisResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"subject":   req.Goal.Subject,
		"goal_type": req.Goal.GoalType,
	}
	defer func() { observe(ctx, s.observer, "analyze-goal", startedAt, fields, err) }()

	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	if v := importer.Validate(&req.Goal); !v.Valid {
		return nil, &app.AnalysisError{
			Code:       app.ErrInvalidGoalRequest,
			Message:    "goal request is invalid",
			Violations: v.Errors,
		}
	}

	goal, err := importer.ToStudyGoal(&req.Goal)
	if err != nil {
		return nil, &app.AnalysisError{Code: app.ErrInvalidGoalRequest, Message: err.Error(), Err: err}
	}

	tc, err := scheduler.ComputeTimeConstraints(now, goal.TargetDate, goal.AvailableDailyHours)
	if err != nil {
		return nil, &app.AnalysisError{Code: app.ErrNonPositiveTimeWindow, Message: err.Error(), Err: err}
	}

	set, err := s.topics.Topics(catalog.TopicRequest{
		Subject:        goal.Subject,
		GoalType:       goal.GoalType,
		Level:          goal.CurrentLevel,
		SpecificTopics: goal.SpecificTopics,
	})
	if err != nil {
		return nil, &app.AnalysisError{Code: app.ErrInternal, Message: "resolving topics", Err: err}
	}

	required := set.RequiredHours()
	score := scheduler.ScoreFeasibility(tc.TotalHours, required, goal.CurrentLevel)
	feasible := s.policy.IsFeasible(score)

	var alternatives []domain.AlternativeTimeline
	if !feasible {
		alternatives = scheduler.GenerateAlternatives(now, tc, required, s.policy)
	}

	result = &domain.GoalAnalysisResult{
		GoalID:                  uuid.NewString(),
		UserID:                  goal.UserID,
		GoalType:                goal.GoalType,
		Subject:                 goal.Subject,
		TargetDate:              goal.TargetDate,
		AvailableDailyHours:     goal.AvailableDailyHours,
		CurrentLevel:            goal.CurrentLevel,
		SpecificTopics:          goal.SpecificTopics,
		TimeConstraints:         tc,
		FeasibilityScore:        score,
		IsFeasible:              feasible,
		EstimatedCompletionDate: now.AddDate(0, 0, scheduler.DaysNeeded(required, goal.AvailableDailyHours)),
		Recommendations: buildRecommendations(recommendationInput{
			Goal:          goal,
			Constraints:   tc,
			Topics:        set,
			RequiredHours: required,
			Feasible:      feasible,
		}),
		Alternatives:           alternatives,
		TopicCount:             set.TopicCount(),
		EstimatedHoursPerTopic: set.HoursPerTopic,
		CreatedAt:              now,
	}
	fields["goal_id"] = result.GoalID
	fields["score"] = score
	fields["feasible"] = feasible
	fields["topic_source"] = string(set.Source)

	if err = s.analyses.Put(ctx, result); err != nil {
		return nil, &app.AnalysisError{Code: app.ErrInternal, Message: "saving analysis", Err: err}
	}
	return result, nil
}

func (s *goalAnalysisService) Get(ctx context.Context, userID, goalID string) (*domain.GoalAnalysisResult, error) {
	a, err := s.analyses.Get(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.AnalysisError{
				Code:    app.ErrNotFound,
				Message: fmt.Sprintf("goal analysis %s not found", goalID),
				Err:     err,
			}
		}
		return nil, fmt.Errorf("getting goal analysis: %w", err)
	}
	return a, nil
}

func (s *goalAnalysisService) List(ctx context.Context, userID string) ([]*domain.GoalAnalysisResult, error) {
	list, err := s.analyses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goal analyses: %w", err)
	}
	return list, nil
}
