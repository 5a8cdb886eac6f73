package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

const labelWidth = 10

func field(label, value string) string {
	return fmt.Sprintf("%s%s\n", StyleDim.Render(fmt.Sprintf("%-*s", labelWidth, label)), value)
}

// FormatAnalysis renders a full goal analysis: summary fields, the score,
// recommendations and any alternative timelines.
func FormatAnalysis(a *domain.GoalAnalysisResult) string {
	var b strings.Builder
	tc := a.TimeConstraints
	required := float64(a.TopicCount * a.EstimatedHoursPerTopic)

	b.WriteString(Header("Goal Analysis") + "\n")
	b.WriteString(field("Goal", fmt.Sprintf("%s  %s %s %s",
		TruncID(a.GoalID), GoalTypeBadge(a.GoalType), Bold(a.Subject), Dim("("+string(a.CurrentLevel)+")"))))
	b.WriteString(field("Target", fmt.Sprintf("%s %s",
		LongDate(a.TargetDate),
		Dim(fmt.Sprintf("(%d days, %s/day, %s total)", tc.TotalDays, FormatHours(tc.DailyHours), FormatHours(tc.TotalHours))))))
	b.WriteString(field("Topics", fmt.Sprintf("%d × %dh = %s", a.TopicCount, a.EstimatedHoursPerTopic, FormatHours(required))))
	b.WriteString(field("Score", RenderScore(a.FeasibilityScore, 20)+"  "+FeasibilityBadge(a.IsFeasible)))
	b.WriteString(field("Finish", LongDate(a.EstimatedCompletionDate)+Dim(" at the current pace")))
	if len(a.SpecificTopics) > 0 {
		b.WriteString(field("Focus", strings.Join(a.SpecificTopics, ", ")))
	}

	if len(a.Recommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		b.WriteString(BulletList(a.Recommendations))
	}

	if len(a.Alternatives) > 0 {
		b.WriteString("\n" + Header("Alternatives") + "\n")
		b.WriteString(FormatAlternatives(a.Alternatives))
	}
	return b.String()
}

// FormatAlternatives renders alternative timelines as a table followed by
// each option's reasoning.
func FormatAlternatives(alts []domain.AlternativeTimeline) string {
	rows := make([][]string, 0, len(alts))
	for _, alt := range alts {
		rows = append(rows, []string{
			alt.Description,
			LongDate(alt.AdjustedTargetDate),
			FormatHours(alt.AdjustedDailyHours),
			strconv.Itoa(alt.AdjustedTotalDays),
			ScoreStyle(alt.FeasibilityScore).Render(strconv.Itoa(alt.FeasibilityScore)),
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable([]string{"OPTION", "TARGET", "DAILY", "DAYS", "SCORE"}, rows, 2, 3, 4))
	for _, alt := range alts {
		b.WriteString(Dim(alt.Description+": ") + alt.Reasoning + "\n")
	}
	return b.String()
}

// FormatAnalysisList renders stored analyses newest first as a table.
func FormatAnalysisList(list []*domain.GoalAnalysisResult) string {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		feasible := StyleGreen.Render("yes")
		if !a.IsFeasible {
			feasible = StyleRed.Render("no")
		}
		rows = append(rows, []string{
			TruncID(a.GoalID),
			a.Subject,
			GoalTypeBadge(a.GoalType),
			string(a.CurrentLevel),
			LongDate(a.TargetDate),
			ScoreStyle(a.FeasibilityScore).Render(strconv.Itoa(a.FeasibilityScore)),
			feasible,
		})
	}
	return RenderTable([]string{"ID", "SUBJECT", "TYPE", "LEVEL", "TARGET", "SCORE", "FEASIBLE"}, rows, 5)
}
