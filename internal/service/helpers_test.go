package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

var analysisNow = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	db       *sql.DB
	analyses *repository.SQLiteGoalAnalysisRepo
	plans    *repository.SQLiteStudyPlanRepo
	syllabi  *repository.SQLiteSyllabusRepo
	catalog  catalog.Provider
	policy   scheduler.PlanningPolicy
	analysis GoalAnalysisService
	planner  StudyPlanService
	syllabus SyllabusService
	observed *recordingObserver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:       database,
		analyses: repository.NewSQLiteGoalAnalysisRepo(database),
		plans:    repository.NewSQLiteStudyPlanRepo(database),
		syllabi:  repository.NewSQLiteSyllabusRepo(database),
		catalog:  catalog.NewDefaultCatalog(),
		policy:   scheduler.DefaultPlanningPolicy(),
		observed: &recordingObserver{},
	}
	env.rebuild(testutil.NewTestUoW(database))
	return env
}

// rebuild recreates the services so tests can swap the provider, policy or
// unit of work.
func (e *testEnv) rebuild(uow db.UnitOfWork) {
	e.analysis = NewGoalAnalysisService(e.analyses, e.catalog, e.policy, e.observed)
	e.planner = NewStudyPlanService(e.analyses, e.plans, e.syllabi, e.catalog, uow, e.policy, e.observed)
	e.syllabus = NewSyllabusService(e.syllabi, uow, e.observed)
}

func goalRequest(subject, goalType, level string, days int, hours float64) app.AnalyzeGoalRequest {
	now := analysisNow
	req := app.NewAnalyzeGoalRequest(importer.GoalRequest{
		UserID:              "user-1",
		GoalType:            goalType,
		Subject:             subject,
		TargetDate:          now.AddDate(0, 0, days).Format(time.RFC3339),
		AvailableDailyHours: hours,
		CurrentLevel:        level,
	})
	req.Now = &now
	return req
}

func planRequest(goalID string) app.GeneratePlanRequest {
	now := analysisNow
	req := app.NewGeneratePlanRequest("user-1", goalID)
	req.Now = &now
	return req
}

func requireAnalysisCode(t *testing.T, err error, code app.ErrorCode) *app.AnalysisError {
	t.Helper()
	var ae *app.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, code, ae.Code, ae.Error())
	return ae
}

func requirePlanCode(t *testing.T, err error, code app.ErrorCode) *app.PlanError {
	t.Helper()
	var pe *app.PlanError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, code, pe.Code, pe.Error())
	return pe
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// stubProvider serves a fixed topic set regardless of the request.
type stubProvider struct {
	set catalog.TopicSet
}

func (p stubProvider) Topics(catalog.TopicRequest) (catalog.TopicSet, error) {
	return p.set, nil
}

func (p stubProvider) Subjects() []catalog.SubjectSummary { return nil }
