package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/google/uuid"
)

type studyPlanService struct {
	analyses repository.GoalAnalysisRepo
	plans    repository.StudyPlanRepo
	syllabi  repository.SyllabusRepo
	topics   catalog.Provider
	uow      db.UnitOfWork
	policy   scheduler.PlanningPolicy
	observer UseCaseObserver
}

func NewStudyPlanService(
	analyses repository.GoalAnalysisRepo,
	plans repository.StudyPlanRepo,
	syllabi repository.SyllabusRepo,
	topics catalog.Provider,
	uow db.UnitOfWork,
	policy scheduler.PlanningPolicy,
	observers ...UseCaseObserver,
) StudyPlanService {
	return &studyPlanService{
		analyses: analyses,
		plans:    plans,
		syllabi:  syllabi,
		topics:   topics,
		uow:      uow,
		policy:   policy,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *studyPlanService) Generate(ctx context.Context, req app.GeneratePlanRequest) (plan *domain.StudyPlan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"goal_id": req.GoalID,
	}
	defer func() { observe(ctx, s.observer, "generate-plan", startedAt, fields, err) }()

	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.GoalID) == "" {
		return nil, &app.PlanError{Code: app.ErrInvalidGoalRequest, Message: "userId and goalId are required"}
	}

	analysis, err := s.analyses.Get(ctx, req.UserID, req.GoalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.ErrNotFound,
				Message: fmt.Sprintf("goal analysis %s not found", req.GoalID),
				Err:     err,
			}
		}
		return nil, &app.PlanError{Code: app.ErrInternal, Message: "loading goal analysis", Err: err}
	}

	tc, err := scheduler.ComputeTimeConstraints(now, analysis.TargetDate, analysis.AvailableDailyHours)
	if err != nil {
		return nil, &app.PlanError{Code: app.ErrNonPositiveTimeWindow, Message: err.Error(), Err: err}
	}

	names, source, err := s.topicNames(ctx, req, analysis)
	if err != nil {
		return nil, err
	}
	fields["topic_source"] = source

	set, err := s.topics.Topics(catalog.TopicRequest{
		Subject:        analysis.Subject,
		GoalType:       analysis.GoalType,
		Level:          analysis.CurrentLevel,
		SpecificTopics: names,
	})
	if err != nil {
		return nil, &app.PlanError{Code: app.ErrInternal, Message: "resolving topics", Err: err}
	}

	ordered, err := scheduler.PrioritizeTopics(set.Topics, analysis.CurrentLevel, s.policy.StrictPrerequisites)
	if err != nil {
		var cycle *scheduler.CyclicPrerequisiteError
		if errors.As(err, &cycle) {
			return nil, &app.PlanError{Code: app.ErrCyclicPrerequisite, Message: err.Error(), Err: err}
		}
		return nil, &app.PlanError{Code: app.ErrInternal, Message: "ordering topics", Err: err}
	}

	gate := scheduler.CheckPlanFeasibility(ordered.Topics, tc, s.policy)
	if !gate.Feasible {
		return nil, &app.PlanError{
			Code:        app.ErrPlanNotFeasible,
			Message:     "plan does not fit the available time",
			Reason:      gate.Reason,
			Suggestions: gate.Suggestions,
		}
	}

	alloc := scheduler.AllocateSessions(ordered.Topics, now, tc.TotalDays, tc.DailyHours)

	sequence := make([]string, 0, len(ordered.Topics))
	for _, t := range ordered.Topics {
		sequence = append(sequence, t.ID)
	}

	plan = &domain.StudyPlan{
		PlanID:              uuid.NewString(),
		GoalID:              analysis.GoalID,
		UserID:              analysis.UserID,
		DailySessions:       alloc.Sessions,
		TotalDuration:       tc.TotalDays,
		EstimatedCompletion: lastStudyDate(alloc.Sessions, now),
		TopicSequence:       sequence,
		Topics:              ordered.Topics,
		Milestones:          scheduler.GenerateMilestones(alloc.Sessions, tc.TotalDays),
		Status:              domain.PlanActive,
		Warnings:            planWarnings(ordered, alloc),
		CreatedAt:           now,
	}
	fields["plan_id"] = plan.PlanID
	fields["topic_count"] = len(plan.Topics)
	fields["overflow_hours"] = alloc.OverflowHours()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStudyPlanRepo(tx).Put(ctx, plan)
	})
	if err != nil {
		return nil, &app.PlanError{Code: app.ErrInternal, Message: "saving study plan", Err: err}
	}
	return plan, nil
}

// topicNames picks the topic source for a plan: custom names win, then
// syllabus documents, then whatever the analysis itself used.
func (s *studyPlanService) topicNames(ctx context.Context, req app.GeneratePlanRequest, analysis *domain.GoalAnalysisResult) ([]string, string, error) {
	if custom := nonBlank(req.CustomTopics); len(custom) > 0 {
		return custom, "custom", nil
	}

	if len(req.SyllabusDocumentIDs) > 0 {
		var names []string
		for _, id := range req.SyllabusDocumentIDs {
			doc, err := s.syllabi.Get(ctx, req.UserID, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, "", &app.PlanError{
						Code:    app.ErrNotFound,
						Message: fmt.Sprintf("syllabus document %s not found", id),
						Err:     err,
					}
				}
				return nil, "", &app.PlanError{Code: app.ErrInternal, Message: "loading syllabus document", Err: err}
			}
			names = append(names, doc.Topics...)
		}
		if names = nonBlank(names); len(names) > 0 {
			return names, "syllabus", nil
		}
	}

	if len(analysis.SpecificTopics) > 0 {
		return analysis.SpecificTopics, "custom", nil
	}
	return nil, "catalog", nil
}

func (s *studyPlanService) Get(ctx context.Context, userID, planID string) (*domain.StudyPlan, error) {
	p, err := s.plans.Get(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.ErrNotFound,
				Message: fmt.Sprintf("study plan %s not found", planID),
				Err:     err,
			}
		}
		return nil, fmt.Errorf("getting study plan: %w", err)
	}
	return p, nil
}

func (s *studyPlanService) ListByGoal(ctx context.Context, userID, goalID string) ([]*domain.StudyPlan, error) {
	list, err := s.plans.ListByGoal(ctx, userID, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing study plans: %w", err)
	}
	return list, nil
}

// nonBlank trims names and drops blanks and case-insensitive duplicates,
// keeping first occurrences in order.
func nonBlank(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// lastStudyDate is the date of the last session with any study scheduled,
// or the start day when nothing was scheduled.
func lastStudyDate(sessions []domain.DailySession, now time.Time) time.Time {
	for i := len(sessions) - 1; i >= 0; i-- {
		if len(sessions[i].Topics) > 0 {
			return sessions[i].Date
		}
	}
	return scheduler.StartOfDay(now)
}

func planWarnings(ordered scheduler.Prioritization, alloc scheduler.Allocation) []string {
	var out []string
	if len(ordered.Fallback) > 0 {
		out = append(out, fmt.Sprintf(
			"Prerequisite cycle among %s; these topics are ordered by priority instead",
			strings.Join(ordered.Fallback, ", ")))
	}
	for _, o := range alloc.Overflow {
		out = append(out, fmt.Sprintf(
			"%s hours of %s did not fit before the target date",
			scheduler.FormatHours(o.Hours), o.TopicName))
	}
	return out
}
