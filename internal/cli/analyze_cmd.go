package cli

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *App) *cobra.Command {
	var (
		subject, target, file string
		hours                 float64
		topics                []string
		interactive, asJSON   bool
	)
	goalType := goalTypeFlag("job")
	level := levelFlag("beginner")

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze whether a study goal fits its time window",
		Example: `  studyplan analyze --subject javascript --type exam --target 2026-12-01 --hours 2
  studyplan analyze --file goal.json --hours 3
  studyplan analyze --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := importer.GoalRequest{}
			if file != "" {
				loaded, err := importer.LoadGoalRequest(file)
				if err != nil {
					return err
				}
				req = *loaded
			}

			// Flags set explicitly override the goal file.
			flags := cmd.Flags()
			if file == "" || flags.Changed("subject") {
				req.Subject = subject
			}
			if file == "" || flags.Changed("type") {
				req.GoalType = goalType.String()
			}
			if file == "" || flags.Changed("level") {
				req.CurrentLevel = level.String()
			}
			if file == "" || flags.Changed("target") {
				req.TargetDate = target
			}
			if file == "" || flags.Changed("hours") {
				req.AvailableDailyHours = hours
			}
			if flags.Changed("topic") {
				req.SpecificTopics = topics
			}

			if interactive {
				if !a.interactive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				values := wizardValuesFrom(req)
				if err := goalWizardForm(&values).Run(); err != nil {
					return err
				}
				if err := values.apply(&req); err != nil {
					return err
				}
			}

			// The stored analysis always belongs to the active user.
			req.UserID = a.UserID

			analyzeReq := app.NewAnalyzeGoalRequest(req)
			analyzeReq.Now = a.now()
			result, err := a.Analyses.Analyze(cmd.Context(), analyzeReq)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			fmt.Fprint(out, formatter.FormatAnalysis(result))
			fmt.Fprintf(out, "\n%s\n", formatter.Dim("Generate a plan with: studyplan plan generate "+shortID(result.GoalID)))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&subject, "subject", "", "Subject to study (e.g. javascript, sql)")
	addGoalShapeFlags(fs, goalType, level)
	fs.StringVar(&target, "target", "", "Target date (YYYY-MM-DD or RFC 3339)")
	fs.Float64Var(&hours, "hours", 0, "Available study hours per day")
	fs.StringArrayVar(&topics, "topic", nil, "Specific topic to cover (repeatable)")
	fs.StringVarP(&file, "file", "f", "", "Read the goal from a JSON file")
	fs.BoolVarP(&interactive, "interactive", "i", false, "Fill in the goal with an interactive form")
	fs.BoolVar(&asJSON, "json", false, "Print the analysis as JSON")

	return cmd
}
