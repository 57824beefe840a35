package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/ui"
)

// ResultMsg arrives after the dialog closes itself.
type ResultMsg struct {
	Confirmed bool
	Action    string
	Data      any
}

// Model is a modal yes/no prompt. Action and Data pass through untouched so
// the app can route the result.
type Model struct {
	title   string
	message string
	action  string
	data    any
	active  bool
	onYes   bool // highlighted button; starts on No
	width   int
	height  int
}

func New(title, message, action string, data any) Model {
	return Model{
		title:   title,
		message: message,
		action:  action,
		data:    data,
		active:  true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		return m.close(true)
	case "n", "N", "esc":
		return m.close(false)
	case "enter":
		return m.close(m.onYes)
	case "tab", "left", "right", "h", "l":
		m.onYes = !m.onYes
	}
	return m, nil
}

func (m Model) close(confirmed bool) (Model, tea.Cmd) {
	m.active = false
	res := ResultMsg{Confirmed: confirmed, Action: m.action, Data: m.data}
	return m, func() tea.Msg { return res }
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorWarning).
		Render(m.title)

	yes := lipgloss.NewStyle().Padding(0, 1)
	no := lipgloss.NewStyle().Padding(0, 1)
	if m.onYes {
		yes = yes.Bold(true).Background(ui.ColorSuccess).Foreground(lipgloss.Color("#F9FAFB"))
		no = no.Foreground(ui.ColorMuted)
	} else {
		yes = yes.Foreground(ui.ColorMuted)
		no = no.Bold(true).Background(ui.ColorFailure).Foreground(lipgloss.Color("#F9FAFB"))
	}

	body := fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\n%s",
		title, m.message,
		yes.Render("Yes"), no.Render("No"),
		ui.StyleMuted.Render("y/n to confirm, esc to cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(50).
		Render(body)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box)
	}
	return box
}
