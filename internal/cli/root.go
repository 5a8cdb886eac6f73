package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Analyses service.GoalAnalysisService
	Plans    service.StudyPlanService
	Syllabi  service.SyllabusService
	Catalog  service.CatalogService

	// UserID scopes every stored record. The --user flag overrides it.
	UserID string

	// IsInteractive reports whether stdin is a terminal. Wizards and the
	// plan browser refuse to start when it returns false.
	IsInteractive func() bool

	// Now overrides the clock for analysis and plan generation.
	Now func() time.Time
}

func (a *App) now() *time.Time {
	if a.Now == nil {
		return nil
	}
	t := a.Now()
	return &t
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Goal feasibility analysis and day-by-day study plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "User ID that owns goals, plans and syllabi")

	root.AddCommand(
		newAnalyzeCmd(app),
		newGoalCmd(app),
		newPlanCmd(app),
		newCatalogCmd(app),
		newSyllabusCmd(app),
	)

	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resolveID matches input against ids: an exact match wins, otherwise a
// unique prefix.
func resolveID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// shortID is the 8-character prefix shown in hints and accepted by resolveID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
