package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// resolvePlanID matches a full plan ID or unique prefix across every plan
// of every goal the user owns.
func resolvePlanID(ctx context.Context, a *App, input string) (string, error) {
	goals, err := a.Analyses.List(ctx, a.UserID)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, g := range goals {
		plans, err := a.Plans.ListByGoal(ctx, a.UserID, g.GoalID)
		if err != nil {
			return "", err
		}
		for _, p := range plans {
			ids = append(ids, p.PlanID)
		}
	}
	return resolveID("plan", input, ids)
}

func newPlanCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"plans"},
		Short:   "Generate and inspect study plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(a),
		newPlanListCmd(a),
		newPlanShowCmd(a),
	)

	return cmd
}

func newPlanGenerateCmd(a *App) *cobra.Command {
	var (
		topics, syllabi []string
		asJSON          bool
	)

	cmd := &cobra.Command{
		Use:   "generate GOAL_ID",
		Short: "Generate a day-by-day plan for an analyzed goal",
		Example: `  studyplan plan generate 3f2a9c1b
  studyplan plan generate 3f2a9c1b --topic Closures --topic Promises
  studyplan plan generate 3f2a9c1b --syllabus 7be01d44`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, a, args[0])
			if err != nil {
				return err
			}

			req := app.NewGeneratePlanRequest(a.UserID, goalID)
			req.CustomTopics = topics
			req.Now = a.now()
			if len(syllabi) > 0 {
				docIDs, err := resolveSyllabusIDs(ctx, a, syllabi)
				if err != nil {
					return err
				}
				req.SyllabusDocumentIDs = docIDs
			}

			plan, err := a.Plans.Generate(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, plan)
			}
			fmt.Fprint(out, formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&topics, "topic", nil, "Custom topic to study instead of the catalog (repeatable)")
	cmd.Flags().StringArrayVar(&syllabi, "syllabus", nil, "Syllabus document ID to take topics from (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

func newPlanListCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list GOAL_ID",
		Short: "List plans generated for a goal, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, a, args[0])
			if err != nil {
				return err
			}
			plans, err := a.Plans.ListByGoal(ctx, a.UserID, goalID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, plans)
			}
			if len(plans) == 0 {
				fmt.Fprintln(out, formatter.Dim("No plans yet. Run: studyplan plan generate "+shortID(goalID)))
				return nil
			}
			fmt.Fprint(out, formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print plans as JSON")
	return cmd
}

func newPlanShowCmd(a *App) *cobra.Command {
	var (
		day            int
		asJSON, browse bool
	)

	cmd := &cobra.Command{
		Use:   "show PLAN_ID",
		Short: "Show a study plan, one day of it, or browse it interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			planID, err := resolvePlanID(ctx, a, args[0])
			if err != nil {
				return err
			}
			plan, err := a.Plans.Get(ctx, a.UserID, planID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("day") {
				if day < 1 || day > len(plan.DailySessions) {
					return fmt.Errorf("day must be between 1 and %d", len(plan.DailySessions))
				}
				session := plan.DailySessions[day-1]
				if asJSON {
					return writeJSON(out, session)
				}
				fmt.Fprint(out, formatter.FormatSession(session))
				return nil
			}

			if asJSON {
				return writeJSON(out, plan)
			}
			if browse {
				if !a.interactive() {
					return fmt.Errorf("--browse requires a terminal")
				}
				_, err := tea.NewProgram(newPlanBrowser(plan), tea.WithAltScreen()).Run()
				return err
			}
			fmt.Fprint(out, formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Show a single day in detail")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	cmd.Flags().BoolVarP(&browse, "browse", "b", false, "Browse the schedule interactively")
	return cmd
}
