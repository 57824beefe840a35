package searchview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/search"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

// QueryChangedMsg is emitted on every edit of the search input; the app
// forwards the raw text to the orchestrator, which debounces it.
type QueryChangedMsg struct {
	Query string
}

// RerunMsg asks the app to re-dispatch a recent query immediately.
type RerunMsg struct {
	Query string
}

// Model is the global search overlay: a live query input over unified,
// sectioned results, with recent searches shown while the input is blank.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	results  search.Results
	sel      *search.Selection
	recents  *search.RecentStore

	recentList []string
	recentIdx  int // -1 = input focused, no recent selected

	width  int
	height int
	active bool
	ready  bool
}

func New(recents *search.RecentStore) Model {
	ti := textinput.New()
	ti.Placeholder = "Search everything (task: wiki: priority:high due:today ...)"
	ti.CharLimit = 256

	return Model{
		input:   ti,
		sel:     search.NewSelection(recents),
		recents: recents,
		results: search.Results{Initial: true},
	}
}

func (m *Model) Activate() {
	m.active = true
	m.recentIdx = -1
	m.results = search.Results{Initial: true}
	m.sel.SetResults(m.results)
	m.recentList = m.recents.List()
	m.input.SetValue("")
	m.input.Focus()
	if m.ready {
		m.viewport.SetContent(m.renderResults())
		m.viewport.GotoTop()
	}
}

func (m *Model) Deactivate() {
	m.active = false
	m.input.Blur()
}

func (m Model) IsActive() bool {
	return m.active
}

func (m Model) Query() string {
	return m.input.Value()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.SearchResultsMsg:
		m.results = msg.Results
		m.sel.SetResults(m.results)
		if m.results.Initial {
			m.recentList = m.recents.List()
		}
		m.recentIdx = -1
		if m.ready {
			m.viewport.SetContent(m.renderResults())
			m.viewport.GotoTop()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.Deactivate()
			return m, nil

		case "down", "ctrl+n":
			if m.showingRecents() {
				if len(m.recentList) > 0 {
					m.recentIdx = (m.recentIdx + 1) % len(m.recentList)
				}
			} else {
				m.sel.Navigate(1)
			}
			if m.ready {
				m.viewport.SetContent(m.renderResults())
			}
			return m, nil

		case "up", "ctrl+p":
			if m.showingRecents() {
				if len(m.recentList) > 0 {
					if m.recentIdx < 0 {
						m.recentIdx = len(m.recentList) - 1
					} else {
						m.recentIdx = (m.recentIdx - 1 + len(m.recentList)) % len(m.recentList)
					}
				}
			} else {
				m.sel.Navigate(-1)
			}
			if m.ready {
				m.viewport.SetContent(m.renderResults())
			}
			return m, nil

		case "enter":
			if m.showingRecents() && m.recentIdx >= 0 && m.recentIdx < len(m.recentList) {
				q := m.recentList[m.recentIdx]
				m.input.SetValue(q)
				m.input.CursorEnd()
				m.recentIdx = -1
				return m, func() tea.Msg { return RerunMsg{Query: q} }
			}
			// Activation either opens the selected hit or saves the query.
			m.sel.ActivateSelected()
			return m, nil

		case "ctrl+x":
			// Drop the highlighted recent query.
			if m.showingRecents() && m.recentIdx >= 0 && m.recentIdx < len(m.recentList) {
				m.recents.Remove(m.recentList[m.recentIdx])
				m.recentList = m.recents.List()
				if m.recentIdx >= len(m.recentList) {
					m.recentIdx = len(m.recentList) - 1
				}
				if m.ready {
					m.viewport.SetContent(m.renderResults())
				}
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			query := m.input.Value()
			m.recentIdx = -1
			return m, tea.Batch(cmd, func() tea.Msg { return QueryChangedMsg{Query: query} })
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}
		m.viewport.SetContent(m.renderResults())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) showingRecents() bool {
	return m.results.Initial
}

func (m Model) renderResults() string {
	if m.results.Initial {
		return m.renderRecents()
	}
	if m.results.Empty() {
		return "\n  No results for " + lipgloss.NewStyle().Bold(true).Render(m.results.Query)
	}

	muted := ui.StyleMuted
	header := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	highlight := lipgloss.NewStyle().Background(ui.ColorHighlight)

	var b strings.Builder
	flat := 0
	for _, sec := range m.results.Sections {
		b.WriteString("\n  " + header.Render(sec.Type.Label()) + "\n")
		for _, it := range sec.Items {
			cursor := "  "
			line := fmt.Sprintf("%s%s %s", cursor, ui.EntityTag(it.Type), displayLine(it))
			if flat == m.sel.Index() {
				line = highlight.Render("> " + ui.EntityTag(it.Type) + " " + displayLine(it))
			}
			b.WriteString("  " + line + "\n")
			flat++
		}
	}
	b.WriteString("\n" + muted.Render("  enter:open  j/k:navigate  esc:close") + "\n")
	return b.String()
}

func (m Model) renderRecents() string {
	muted := ui.StyleMuted
	highlight := lipgloss.NewStyle().Background(ui.ColorHighlight)

	var b strings.Builder
	b.WriteString("\n  " + lipgloss.NewStyle().Bold(true).Render("Recent searches") + "\n\n")
	if len(m.recentList) == 0 {
		b.WriteString(muted.Render("  Nothing yet. Type to search across operations, tasks, wikis and events.") + "\n")
	}
	for i, q := range m.recentList {
		line := "  " + q
		if i == m.recentIdx {
			line = highlight.Render("> " + q)
		}
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n" + muted.Render("  enter:run again  ctrl+x:forget  esc:close") + "\n")
	return b.String()
}

// displayLine renders one hit the way its domain list would.
func displayLine(it search.Item) string {
	switch v := it.Display.(type) {
	case model.Operation:
		extra := v.Region
		if extra != "" {
			extra = "  " + ui.StyleInfo.Render(extra)
		}
		return v.Name + extra
	case model.Task:
		return fmt.Sprintf("%s  %s %s",
			v.Title,
			ui.PriorityStyle(v.Priority).Render(string(v.Priority)),
			ui.StyleMuted.Render(v.OperationName))
	case model.Wiki:
		return v.Title + "  " + ui.StyleMuted.Render(v.Excerpt(40))
	case model.Event:
		return v.Title + "  " + ui.StyleMuted.Render(v.StartsAt.Format("Jan 2 15:04"))
	default:
		return it.ID
	}
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString("  / " + m.input.View() + "\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	}
	return b.String()
}
