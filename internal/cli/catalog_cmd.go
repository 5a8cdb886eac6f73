package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the topic catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(a),
		newCatalogShowCmd(a),
	)

	return cmd
}

func newCatalogListCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog subjects and the keywords that select them",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects := a.Catalog.Subjects()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, subjects)
			}
			fmt.Fprint(out, formatter.FormatSubjects(subjects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print subjects as JSON")
	return cmd
}

func newCatalogShowCmd(a *App) *cobra.Command {
	var asJSON bool
	goalType := goalTypeFlag("job")
	level := levelFlag("intermediate")

	cmd := &cobra.Command{
		Use:   "show SUBJECT",
		Short: "Preview the topics a goal for SUBJECT would get",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.Catalog.Preview(catalog.TopicRequest{
				Subject:  strings.Join(args, " "),
				GoalType: domain.GoalType(goalType.String()),
				Level:    domain.SkillLevel(level.String()),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, set)
			}
			fmt.Fprint(out, formatter.FormatTopicSet(set))
			return nil
		},
	}

	addGoalShapeFlags(cmd.Flags(), goalType, level)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print topics as JSON")
	return cmd
}
