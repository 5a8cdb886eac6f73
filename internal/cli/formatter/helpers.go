package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// ShortDate formats a calendar date as "Mon Jan 2".
func ShortDate(t time.Time) string {
	return t.Format("Mon Jan 2")
}

// LongDate formats a calendar date as "Jan 2, 2006".
func LongDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// PlanStatusPill returns a colored status indicator for plan status.
func PlanStatusPill(status domain.PlanStatus) string {
	switch status {
	case domain.PlanActive:
		return StyleGreen.Render("● Active")
	case domain.PlanPaused:
		return StyleYellow.Render("○ Paused")
	case domain.PlanCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// GoalTypeBadge returns a capitalized, purple-styled goal type label.
func GoalTypeBadge(g domain.GoalType) string {
	if g == "" {
		return StyleDim.Render("--")
	}
	s := string(g)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours renders fractional hours as "2h 30m", "45m" or "3h".
func FormatHours(h float64) string {
	min := int(math.Round(h * 60))
	if min <= 0 {
		return "0m"
	}
	hours := min / 60
	m := min % 60
	if hours > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", hours, m)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", m)
}

// BulletList renders lines as "  • line" entries.
func BulletList(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("  " + StyleDim.Render("•") + " " + l + "\n")
	}
	return b.String()
}
