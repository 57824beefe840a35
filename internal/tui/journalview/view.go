package journalview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

// --- Custom delegate ---

type journalDelegate struct{}

func (d journalDelegate) Height() int                             { return 2 }
func (d journalDelegate) Spacing() int                            { return 0 }
func (d journalDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d journalDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ji, ok := item.(journalItem)
	if !ok {
		return
	}
	entry := ji.entry

	day := ui.StyleInfo.Render(entry.Day.Format("Mon Jan 2 2006"))
	line1 := fmt.Sprintf(" %s  %s", day, entry.Title)
	line2 := "    " + ui.StyleMuted.Render(excerpt(entry.Body, 60))

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

func excerpt(s string, max int) string {
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}

// --- Item ---

type journalItem struct {
	entry model.Journal
}

func (j journalItem) FilterValue() string {
	return j.entry.Day.Format("2006-01-02") + " " + j.entry.Title + " " + j.entry.Body
}

// --- Model ---

type Model struct {
	list    list.Model
	entries []model.Journal
	width   int
	height  int
	loading bool
	err     error
}

func New() Model {
	l := list.New(nil, journalDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.DisableQuitKeybindings()

	return Model{list: l, loading: true}
}

func (m Model) Selected() *model.Journal {
	if item, ok := m.list.SelectedItem().(journalItem); ok {
		return &item.entry
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.JournalsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.entries = msg.Entries
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = journalItem{entry: e}
		}
		cmd := m.list.SetItems(items)
		m.list.Select(0)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "f" && !m.IsFiltering() && len(m.list.Items()) > 0 {
			m.list.KeyMap.Filter.SetEnabled(true)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return "\n  Loading journal..."
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v", m.err)
	}
	if len(m.list.Items()) == 0 {
		return "\n  No journal entries yet. Press a to write one."
	}
	return m.list.View()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{ui.Keys.Enter, ui.Keys.Add, ui.Keys.Filter}
}
