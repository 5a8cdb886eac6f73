package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/config"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprint(os.Stderr, formatter.FormatError(err))
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	topics, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	// Wire repositories
	analysisRepo := repository.NewSQLiteGoalAnalysisRepo(database)
	planRepo := repository.NewSQLiteStudyPlanRepo(database)
	syllabusRepo := repository.NewSQLiteSyllabusRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}
	policy := cfg.Policy()

	app := &cli.App{
		Analyses: service.NewGoalAnalysisService(analysisRepo, topics, policy, observer),
		Plans:    service.NewStudyPlanService(analysisRepo, planRepo, syllabusRepo, topics, uow, policy, observer),
		Syllabi:  service.NewSyllabusService(syllabusRepo, uow, observer),
		Catalog:  service.NewCatalogService(topics),
		UserID:   cfg.UserID,
	}

	// Wizards and the plan browser need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// loadCatalog reads the topic catalog from a JSON file when path is set,
// otherwise it returns the built-in tables.
func loadCatalog(path string) (*catalog.MemoryCatalog, error) {
	if path == "" {
		return catalog.NewDefaultCatalog(), nil
	}
	subjects, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return catalog.NewMemoryCatalog(subjects), nil
}
