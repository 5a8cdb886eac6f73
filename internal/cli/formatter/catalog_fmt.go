package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func FormatSubjects(subjects []catalog.SubjectSummary) string {
	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, []string{
			Bold(s.Key),
			strings.Join(s.Keywords, ", "),
			strconv.Itoa(s.BaseCount),
			strconv.Itoa(s.TopicCount),
		})
	}
	return RenderTable([]string{"SUBJECT", "KEYWORDS", "BASE", "TOPICS"}, rows, 2, 3)
}

// FormatTopicSet renders resolved topics grouped by category as a tree,
// with priority, difficulty and prerequisites beside each topic.
func FormatTopicSet(set catalog.TopicSet) string {
	var b strings.Builder
	title := set.Subject
	if title == "" {
		title = string(set.Source)
	}
	b.WriteString(Header("Topics: "+title) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d estimated topics · %dh each · source %s",
		set.TopicCount(), set.EstimatedCount, set.HoursPerTopic, set.Source)) + "\n\n")

	var order []string
	byCategory := map[string][]domain.Topic{}
	for _, t := range set.Topics {
		if _, ok := byCategory[t.Category]; !ok {
			order = append(order, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	var items []TreeItem
	for _, cat := range order {
		items = append(items, TreeItem{Title: StyleHeader.Render(cat)})
		topics := byCategory[cat]
		for i, t := range topics {
			detail := fmt.Sprintf("P%d %s", t.Priority, t.Difficulty)
			if len(t.Prerequisites) > 0 {
				detail += " · after " + strings.Join(t.Prerequisites, ", ")
			}
			items = append(items, TreeItem{
				Title:  t.Name,
				Level:  1,
				IsLast: i == len(topics)-1,
				Detail: detail,
			})
		}
	}
	b.WriteString(RenderTree(items))
	return b.String()
}

func FormatSyllabusList(docs []*domain.SyllabusDocument) string {
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{
			TruncID(d.ID),
			d.Title,
			strconv.Itoa(len(d.Topics)),
			LongDate(d.CreatedAt),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "TOPICS", "ADDED"}, rows, 2)
}
