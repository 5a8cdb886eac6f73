package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

// syllabusFile is the import format for `syllabus add --file`: one or more
// documents with already-extracted topic names.
type syllabusFile struct {
	Documents []struct {
		Title  string   `json:"title"`
		Topics []string `json:"topics"`
	} `json:"documents"`
}

func loadSyllabusFile(path, userID string) ([]*domain.SyllabusDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f syllabusFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing syllabus file: %w", err)
	}
	if len(f.Documents) == 0 {
		return nil, fmt.Errorf("syllabus file %s has no documents", path)
	}
	docs := make([]*domain.SyllabusDocument, len(f.Documents))
	for i, d := range f.Documents {
		docs[i] = &domain.SyllabusDocument{UserID: userID, Title: d.Title, Topics: d.Topics}
	}
	return docs, nil
}

func resolveSyllabusIDs(ctx context.Context, a *App, inputs []string) ([]string, error) {
	docs, err := a.Syllabi.List(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		id, err := resolveID("syllabus", in, ids)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func newSyllabusCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "syllabus",
		Aliases: []string{"syllabi"},
		Short:   "Register syllabus topic lists for plan generation",
	}

	cmd.AddCommand(
		newSyllabusAddCmd(a),
		newSyllabusListCmd(a),
	)

	return cmd
}

func newSyllabusAddCmd(a *App) *cobra.Command {
	var (
		title, file string
		topics      []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a syllabus from flags or a JSON file",
		Example: `  studyplan syllabus add --title "CS101 midterm" --topic Recursion --topic "Big O"
  studyplan syllabus add --file syllabi.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var docs []*domain.SyllabusDocument
			if file != "" {
				loaded, err := loadSyllabusFile(file, a.UserID)
				if err != nil {
					return err
				}
				docs = loaded
			} else {
				docs = []*domain.SyllabusDocument{{UserID: a.UserID, Title: title, Topics: topics}}
			}

			if err := a.Syllabi.RegisterAll(cmd.Context(), docs); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range docs {
				fmt.Fprintf(out, "Registered syllabus %s %s (%d topics)\n",
					formatter.Bold(d.Title), formatter.TruncID(d.ID), len(d.Topics))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Syllabus title")
	cmd.Flags().StringArrayVar(&topics, "topic", nil, "Topic name (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read documents from a JSON file")
	cmd.MarkFlagsMutuallyExclusive("file", "title")
	cmd.MarkFlagsMutuallyExclusive("file", "topic")

	return cmd
}

func newSyllabusListCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered syllabi",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.Syllabi.List(cmd.Context(), a.UserID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, docs)
			}
			if len(docs) == 0 {
				fmt.Fprintln(out, formatter.Dim("No syllabi registered."))
				return nil
			}
			fmt.Fprint(out, formatter.FormatSyllabusList(docs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print syllabi as JSON")
	return cmd
}
