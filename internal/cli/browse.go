package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// browserChrome is the number of lines used by the title and help bar.
const browserChrome = 6

type browserKeys struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Back   key.Binding
	Quit   key.Binding
	Scroll key.Binding
}

func defaultBrowserKeys() browserKeys {
	return browserKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "day detail")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Scroll: key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	}
}

func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Quit}
}

func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Scroll}}
}

// planBrowser lists a plan's days and opens one day at a time in a
// scrollable detail pane.
type planBrowser struct {
	plan   *domain.StudyPlan
	cursor int
	detail bool
	width  int
	height int
	vp     viewport.Model
	help   help.Model
	keys   browserKeys
}

func newPlanBrowser(plan *domain.StudyPlan) planBrowser {
	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
	}
	return planBrowser{
		plan:   plan,
		width:  80,
		height: 20 + browserChrome,
		vp:     vp,
		help:   help.New(),
		keys:   defaultBrowserKeys(),
	}
}

func (m planBrowser) Init() tea.Cmd { return nil }

func (m planBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(1, msg.Height-browserChrome)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.detail {
			if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Open) {
				m.detail = false
				return m, nil
			}
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.plan.DailySessions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			if len(m.plan.DailySessions) > 0 {
				m.detail = true
				m.vp.SetContent(formatter.FormatSession(m.plan.DailySessions[m.cursor]))
				m.vp.GotoTop()
			}
		}
	}
	return m, nil
}

func (m planBrowser) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Study Plan") + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%s · %d days", shortID(m.plan.PlanID), m.plan.TotalDuration)) + "\n\n")

	if m.detail {
		b.WriteString(m.vp.View())
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// listView renders the day rows that fit on screen, keeping the cursor
// visible.
func (m planBrowser) listView() string {
	sessions := m.plan.DailySessions
	if len(sessions) == 0 {
		return formatter.Dim("This plan has no study days.") + "\n"
	}

	rows := max(1, m.height-browserChrome)
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(len(sessions), start+rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(sessionLine(sessions[i], i == m.cursor) + "\n")
	}
	return b.String()
}

func sessionLine(s domain.DailySession, selected bool) string {
	names := make([]string, len(s.Topics))
	for i, st := range s.Topics {
		names[i] = st.TopicName
	}
	line := fmt.Sprintf("%3d  %-10s  %-7s  %s", s.Day, formatter.ShortDate(s.Date), formatter.FormatHours(s.TotalHours), s.FocusArea)
	if len(names) > 0 {
		line += " · " + strings.Join(names, ", ")
	}
	if selected {
		return formatter.StyleHeader.Render("▸ " + line)
	}
	if len(s.Topics) == 0 {
		return "  " + formatter.Dim(line)
	}
	return "  " + line
}
