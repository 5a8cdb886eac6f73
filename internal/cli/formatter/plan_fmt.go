package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatPlan renders a plan summary, the topic sequence, the day-by-day
// schedule, milestones and warnings. Runs of days with nothing scheduled
// are collapsed into one row.
func FormatPlan(p *domain.StudyPlan) string {
	var b strings.Builder

	var hours float64
	for _, t := range p.Topics {
		hours += t.EstimatedHours
	}

	b.WriteString(Header("Study Plan") + "\n")
	b.WriteString(field("Plan", TruncID(p.PlanID)+"  "+PlanStatusPill(p.Status)))
	b.WriteString(field("Goal", TruncID(p.GoalID)))
	b.WriteString(field("Length", fmt.Sprintf("%d days, study ends %s", p.TotalDuration, LongDate(p.EstimatedCompletion))))
	b.WriteString(field("Topics", fmt.Sprintf("%d (%s)", len(p.Topics), FormatHours(hours))))

	b.WriteString("\n" + Header("Topic Sequence") + "\n")
	b.WriteString(FormatTopicSequence(p.Topics))

	b.WriteString("\n" + Header("Schedule") + "\n")
	b.WriteString(FormatSchedule(p.DailySessions))

	if len(p.Milestones) > 0 {
		b.WriteString("\n" + Header("Milestones") + "\n")
		b.WriteString(FormatMilestones(p.Milestones))
	}

	if len(p.Warnings) > 0 {
		b.WriteString("\n" + Header("Warnings") + "\n")
		warnings := make([]string, len(p.Warnings))
		for i, w := range p.Warnings {
			warnings[i] = StyleYellow.Render(w)
		}
		b.WriteString(BulletList(warnings))
	}
	return b.String()
}

// FormatTopicSequence renders topics as a numbered list with difficulty and
// estimated hours.
func FormatTopicSequence(topics []domain.Topic) string {
	rows := make([][]string, 0, len(topics))
	for i, t := range topics {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.Name,
			DifficultyBadge(t.Difficulty),
			"P" + strconv.Itoa(t.Priority),
			FormatHours(t.EstimatedHours),
		})
	}
	return RenderTable([]string{"#", "TOPIC", "DIFFICULTY", "PRIORITY", "HOURS"}, rows, 0, 4)
}

// FormatSchedule renders one row per study day. Consecutive days with no
// topics collapse into a single "a-b" row.
func FormatSchedule(sessions []domain.DailySession) string {
	var rows [][]string
	for i := 0; i < len(sessions); i++ {
		s := sessions[i]
		if len(s.Topics) > 0 {
			names := make([]string, len(s.Topics))
			for j, st := range s.Topics {
				names[j] = st.TopicName
			}
			rows = append(rows, []string{
				strconv.Itoa(s.Day),
				ShortDate(s.Date),
				s.FocusArea,
				FormatHours(s.TotalHours),
				strings.Join(names, ", "),
			})
			continue
		}

		j := i
		for j+1 < len(sessions) && len(sessions[j+1].Topics) == 0 {
			j++
		}
		day := strconv.Itoa(s.Day)
		date := ShortDate(s.Date)
		if j > i {
			day = fmt.Sprintf("%d-%d", s.Day, sessions[j].Day)
			date = ShortDate(s.Date) + " - " + ShortDate(sessions[j].Date)
		}
		rows = append(rows, []string{day, date, Dim(s.FocusArea), Dim("-"), ""})
		i = j
	}
	return RenderTable([]string{"DAY", "DATE", "FOCUS", "HOURS", "TOPICS"}, rows, 3)
}

func FormatMilestones(ms []domain.Milestone) string {
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, []string{
			strconv.Itoa(m.Day),
			CheckpointBadge(m.CheckpointType),
			m.Description,
			strconv.Itoa(len(m.Topics)),
		})
	}
	return RenderTable([]string{"DAY", "TYPE", "DESCRIPTION", "TOPICS"}, rows, 0, 3)
}

// FormatSession renders one day in detail: each topic's hours, activities
// and learning objectives.
func FormatSession(s domain.DailySession) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Bold(fmt.Sprintf("Day %d", s.Day)), Dim("·"), Dim(ShortDate(s.Date)+" · "+FormatHours(s.TotalHours))))

	if len(s.Topics) == 0 {
		b.WriteString("  " + Dim(s.FocusArea) + "\n")
		return b.String()
	}
	for _, st := range s.Topics {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", StyleGreen.Render(st.TopicName), Dim("("+FormatHours(st.AllocatedHours)+")")))
		for _, a := range st.Activities {
			b.WriteString("    " + StyleDim.Render("▸") + " " + a + "\n")
		}
		for _, o := range st.LearningObjectives {
			b.WriteString("    " + StyleBlue.Render("◎") + " " + o + "\n")
		}
	}
	if len(s.Goals) > 0 {
		b.WriteString("\n")
		b.WriteString(BulletList(s.Goals))
	}
	return b.String()
}

// FormatPlanList renders plans for one goal as a table.
func FormatPlanList(plans []*domain.StudyPlan) string {
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			TruncID(p.PlanID),
			LongDate(p.CreatedAt),
			strconv.Itoa(p.TotalDuration),
			strconv.Itoa(len(p.Topics)),
			PlanStatusPill(p.Status),
		})
	}
	return RenderTable([]string{"ID", "CREATED", "DAYS", "TOPICS", "STATUS"}, rows, 2, 3)
}
