package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/google/uuid"
)

type syllabusService struct {
	docs     repository.SyllabusRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSyllabusService(docs repository.SyllabusRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SyllabusService {
	return &syllabusService{
		docs:     docs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *syllabusService) Register(ctx context.Context, doc *domain.SyllabusDocument) error {
	return s.RegisterAll(ctx, []*domain.SyllabusDocument{doc})
}

func (s *syllabusService) RegisterAll(ctx context.Context, docs []*domain.SyllabusDocument) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"document_count": len(docs),
	}
	defer func() { observe(ctx, s.observer, "register-syllabus", startedAt, fields, err) }()

	var violations []string
	for i, doc := range docs {
		for _, v := range validateSyllabus(doc) {
			violations = append(violations, fmt.Sprintf("documents[%d]: %s", i, v))
		}
	}
	if len(violations) > 0 {
		return &app.AnalysisError{
			Code:       app.ErrInvalidGoalRequest,
			Message:    "syllabus document is invalid",
			Violations: violations,
		}
	}

	topicCount := 0
	for _, doc := range docs {
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = startedAt
		}
		doc.Topics = nonBlank(doc.Topics)
		topicCount += len(doc.Topics)
	}
	fields["topic_count"] = topicCount

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDocs := repository.NewSQLiteSyllabusRepo(tx)
		for _, doc := range docs {
			if err := txDocs.Put(ctx, doc); err != nil {
				return fmt.Errorf("saving syllabus %s: %w", doc.ID, err)
			}
		}
		return nil
	})
	return err
}

func validateSyllabus(doc *domain.SyllabusDocument) []string {
	if doc == nil {
		return []string{"document is required"}
	}
	var out []string
	if strings.TrimSpace(doc.UserID) == "" {
		out = append(out, "userId is required")
	}
	if strings.TrimSpace(doc.Title) == "" {
		out = append(out, "title is required")
	}
	if len(nonBlank(doc.Topics)) == 0 {
		out = append(out, "at least one topic is required")
	}
	return out
}

func (s *syllabusService) Get(ctx context.Context, userID, docID string) (*domain.SyllabusDocument, error) {
	doc, err := s.docs.Get(ctx, userID, docID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.ErrNotFound,
				Message: fmt.Sprintf("syllabus document %s not found", docID),
				Err:     err,
			}
		}
		return nil, fmt.Errorf("getting syllabus document: %w", err)
	}
	return doc, nil
}

func (s *syllabusService) List(ctx context.Context, userID string) ([]*domain.SyllabusDocument, error) {
	docs, err := s.docs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing syllabus documents: %w", err)
	}
	return docs, nil
}
