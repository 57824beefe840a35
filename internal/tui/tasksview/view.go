package tasksview

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

// ToggleRequestMsg is emitted when the user hits space on a task; the app
// persists the status cycle and reloads.
type ToggleRequestMsg struct {
	Task model.Task
}

// --- Custom delegate ---

type taskDelegate struct {
	now func() time.Time
}

func (d taskDelegate) Height() int                             { return 2 }
func (d taskDelegate) Spacing() int                            { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	t := ti.task

	icon := ui.TaskStatusIcon(t.Status)
	prio := ui.PriorityStyle(t.Priority).Render(string(t.Priority))
	due := ""
	if t.DueAt != nil {
		label := "due " + t.DueAt.Format("Jan 2")
		if t.Overdue(d.now()) {
			due = ui.StyleFailure.Render(label + " (overdue)")
		} else {
			due = ui.StyleMuted.Render(label)
		}
	}

	line1 := fmt.Sprintf(" %s %s  %s  %s", icon, t.Title, prio, due)
	meta := t.OperationName
	if t.Region != "" {
		if meta != "" {
			meta += "  "
		}
		meta += t.Region
	}
	line2 := "    " + ui.StyleMuted.Render(meta)

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// --- Item ---

type taskItem struct {
	task model.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title + " " + t.task.OperationName + " " + t.task.Region + " " + string(t.task.Priority)
}

// --- Model ---

type Model struct {
	list    list.Model
	tasks   []model.Task
	width   int
	height  int
	loading bool
	err     error
}

func New() Model {
	l := list.New(nil, taskDelegate{now: time.Now}, 0, 0)
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

func (m Model) Selected() *model.Task {
	if item, ok := m.list.SelectedItem().(taskItem); ok {
		return &item.task
	}
	return nil
}

// Select moves the cursor to the task with the given id, if present.
func (m *Model) Select(id string) {
	for i, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
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
	case ui.TasksLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.Tasks
		items := make([]list.Item, len(msg.Tasks))
		for i, t := range msg.Tasks {
			items[i] = taskItem{task: t}
		}
		keep := m.list.Index()
		cmd := m.list.SetItems(items)
		if keep >= len(items) {
			keep = len(items) - 1
		}
		if keep < 0 {
			keep = 0
		}
		m.list.Select(keep)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "f" && !m.IsFiltering() && len(m.list.Items()) > 0 {
			m.list.KeyMap.Filter.SetEnabled(true)
		}

		// Space cycles the task's status, staying on the current row.
		if msg.String() == " " && !m.IsFiltering() {
			if t := m.Selected(); t != nil {
				task := *t
				return m, func() tea.Msg { return ToggleRequestMsg{Task: task} }
			}
			return m, nil
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
		return "\n  Loading tasks..."
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v", m.err)
	}
	if len(m.list.Items()) == 0 {
		return "\n  No tasks yet. Press a to add one."
	}
	return m.list.View()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{ui.Keys.Toggle, ui.Keys.Add, ui.Keys.Delete, ui.Keys.Search, ui.Keys.Filter}
}
