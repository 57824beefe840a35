package opsview

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

// SelectedMsg is emitted when the cursor lands on a different operation, so
// the detail pane can follow.
type SelectedMsg struct {
	OperationID string
}

// --- Custom delegate (avoids DefaultDelegate ANSI corruption during filtering) ---

type opDelegate struct{}

func (d opDelegate) Height() int                              { return 2 }
func (d opDelegate) Spacing() int                             { return 0 }
func (d opDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd  { return nil }

func (d opDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	oi, ok := item.(opItem)
	if !ok {
		return
	}

	icon := ui.OperationStatusIcon(oi.op.Status)
	region := ""
	if oi.op.Region != "" {
		region = ui.StyleInfo.Render(oi.op.Region)
	}
	age := ui.StyleMuted.Render(formatAge(oi.op.Age()))

	line1 := fmt.Sprintf(" %s %s  %s  %s", icon, oi.op.Name, region, age)
	line2 := "    " + ui.StyleMuted.Render(firstLine(oi.op.Description))

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// --- Item ---

type opItem struct {
	op model.Operation
}

func (o opItem) FilterValue() string {
	return o.op.Name + " " + o.op.Region + " " + o.op.Description
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

func formatAge(d time.Duration) string {
	if d <= 0 {
		return "new"
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

// --- Model ---

type Model struct {
	list    list.Model
	ops     []model.Operation
	width   int
	height  int
	loading bool
	err     error
}

func New() Model {
	l := list.New(nil, opDelegate{}, 0, 0)
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

func (m Model) Selected() *model.Operation {
	if item, ok := m.list.SelectedItem().(opItem); ok {
		return &item.op
	}
	return nil
}

// Select moves the cursor to the operation with the given id, if present.
func (m *Model) Select(id string) {
	for i, it := range m.list.Items() {
		if oi, ok := it.(opItem); ok && oi.op.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.OperationsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.ops = msg.Operations
		items := make([]list.Item, len(msg.Operations))
		for i, op := range msg.Operations {
			items[i] = opItem{op: op}
		}
		cmd := m.list.SetItems(items)
		m.list.Select(0)
		return m, tea.Batch(cmd, m.emitSelected())

	case tea.KeyMsg:
		if msg.String() == "f" && !m.IsFiltering() && len(m.list.Items()) > 0 {
			m.list.KeyMap.Filter.SetEnabled(true)
		}

		before := m.list.Index()
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if m.list.Index() != before {
			return m, tea.Batch(cmd, m.emitSelected())
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) emitSelected() tea.Cmd {
	op := m.Selected()
	if op == nil {
		return nil
	}
	id := op.ID
	return func() tea.Msg { return SelectedMsg{OperationID: id} }
}

func (m Model) View() string {
	if m.loading {
		return "\n  Loading operations..."
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v", m.err)
	}
	if len(m.list.Items()) == 0 {
		return "\n  No operations yet. Press a to add one."
	}
	return m.list.View()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{ui.Keys.Enter, ui.Keys.Search, ui.Keys.Filter, ui.Keys.Add}
}
