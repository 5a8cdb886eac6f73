package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveGoalID matches a full goal ID or unique prefix among the user's
// stored analyses.
func resolveGoalID(ctx context.Context, a *App, input string) (string, error) {
	list, err := a.Analyses.List(ctx, a.UserID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(list))
	for i, r := range list {
		ids[i] = r.GoalID
	}
	return resolveID("goal", input, ids)
}

func newGoalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Inspect stored goal analyses",
	}

	cmd.AddCommand(
		newGoalListCmd(a),
		newGoalShowCmd(a),
	)

	return cmd
}

func newGoalListCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List analyzed goals, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.Analyses.List(cmd.Context(), a.UserID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, list)
			}
			if len(list) == 0 {
				fmt.Fprintln(out, formatter.Dim("No goals yet. Run: studyplan analyze --help"))
				return nil
			}
			fmt.Fprint(out, formatter.FormatAnalysisList(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print goals as JSON")
	return cmd
}

func newGoalShowCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show GOAL_ID",
		Short: "Show a stored goal analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveGoalID(ctx, a, args[0])
			if err != nil {
				return err
			}
			result, err := a.Analyses.Get(ctx, a.UserID, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			fmt.Fprint(out, formatter.FormatAnalysis(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the analysis as JSON")
	return cmd
}
