package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studyHuhTheme returns a custom huh theme using the formatter palette.
func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// goalWizardValues holds the raw strings the goal wizard edits. Hours and
// topics are parsed by apply.
type goalWizardValues struct {
	Subject    string
	GoalType   string
	Level      string
	TargetDate string
	Hours      string
	Topics     string
}

func wizardValuesFrom(req importer.GoalRequest) goalWizardValues {
	v := goalWizardValues{
		Subject:    req.Subject,
		GoalType:   req.GoalType,
		Level:      req.CurrentLevel,
		TargetDate: req.TargetDate,
		Topics:     strings.Join(req.SpecificTopics, ", "),
	}
	if req.AvailableDailyHours > 0 {
		v.Hours = strconv.FormatFloat(req.AvailableDailyHours, 'f', -1, 64)
	}
	if v.GoalType == "" {
		v.GoalType = "job"
	}
	if v.Level == "" {
		v.Level = "beginner"
	}
	return v
}

// apply copies the wizard answers onto req. Topics are comma separated.
func (v goalWizardValues) apply(req *importer.GoalRequest) error {
	hours, err := strconv.ParseFloat(strings.TrimSpace(v.Hours), 64)
	if err != nil {
		return fmt.Errorf("daily hours %q is not a number", v.Hours)
	}
	req.Subject = strings.TrimSpace(v.Subject)
	req.GoalType = v.GoalType
	req.CurrentLevel = v.Level
	req.TargetDate = strings.TrimSpace(v.TargetDate)
	req.AvailableDailyHours = hours
	req.SpecificTopics = splitTopics(v.Topics)
	return nil
}

func splitTopics(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// goalWizardForm builds the interactive goal form bound to v.
func goalWizardForm(v *goalWizardValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to learn?").
				Placeholder("JavaScript").
				Value(&v.Subject).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Goal Type").
				Options(
					huh.NewOption("Pass an exam", "exam"),
					huh.NewOption("Prepare for interviews", "interview"),
					huh.NewOption("Get a job", "job"),
					huh.NewOption("Build a project", "project"),
				).
				Value(&v.GoalType),
			huh.NewSelect[string]().
				Title("Current Level").
				Options(
					huh.NewOption("Beginner", "beginner"),
					huh.NewOption("Intermediate", "intermediate"),
					huh.NewOption("Advanced", "advanced"),
				).
				Value(&v.Level),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Target Date (YYYY-MM-DD)").
				Placeholder("2026-12-01").
				Value(&v.TargetDate).
				Validate(validateTargetDate),
			huh.NewInput().
				Title("Daily Study Hours").
				Placeholder("2").
				Value(&v.Hours).
				Validate(validateDailyHours),
			huh.NewInput().
				Title("Specific Topics").
				Description("Optional, comma separated").
				Value(&v.Topics),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateTargetDate(s string) error {
	if _, err := importer.ParseTargetDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateDailyHours(s string) error {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if h <= 0 || h > 24 {
		return fmt.Errorf("must be between 0 and 24")
	}
	return nil
}
