package opdetails

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/search"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

// Model renders the detail pane for the operation under the cursor: its
// metadata, the tasks attached to it, and related wiki pages found through
// the search index.
type Model struct {
	viewport viewport.Model
	op       *model.Operation
	tasks    []model.Task
	related  []search.Document
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

func New() Model {
	return Model{}
}

func (m *Model) SetOperation(op *model.Operation) {
	m.op = op
	m.tasks = nil
	m.related = nil
	m.loading = op != nil
	m.err = nil
	m.refresh()
}

// SetRelated supplies wiki documents the index considers relevant to the
// current operation.
func (m *Model) SetRelated(docs []search.Document) {
	m.related = docs
	m.refresh()
}

func (m *Model) SetTasks(tasks []model.Task, err error) {
	m.tasks = tasks
	m.loading = false
	m.err = err
	m.refresh()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
		}
		m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
	}
}

func (m Model) render() string {
	if m.op == nil {
		return "\n  Select an operation"
	}
	op := m.op

	bold := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString("\n  " + bold.Render(op.Name) + "  " + ui.OperationStatusIcon(op.Status) +
		" " + ui.StyleMuted.Render(string(op.Status)) + "\n\n")

	if op.Region != "" {
		b.WriteString("  Region:  " + ui.StyleInfo.Render(op.Region) + "\n")
	}
	if !op.StartedAt.IsZero() {
		b.WriteString(fmt.Sprintf("  Started: %s (%s ago)\n",
			op.StartedAt.Format("Jan 2 2006"),
			op.Age().Truncate(time.Hour)))
	}
	if op.Description != "" {
		b.WriteString("\n  " + op.Description + "\n")
	}

	b.WriteString("\n  " + bold.Render("Tasks") + "\n\n")
	switch {
	case m.loading:
		b.WriteString("  Loading tasks...\n")
	case m.err != nil:
		b.WriteString(fmt.Sprintf("  Error: %v\n", m.err))
	case len(m.tasks) == 0:
		b.WriteString(ui.StyleMuted.Render("  No tasks for this operation") + "\n")
	default:
		open := 0
		for _, t := range m.tasks {
			if t.Status != model.TaskDone {
				open++
			}
		}
		b.WriteString(fmt.Sprintf("  %d tasks, %d open\n\n", len(m.tasks), open))
		for _, t := range m.tasks {
			due := ""
			if t.DueAt != nil {
				due = ui.StyleMuted.Render("  due " + t.DueAt.Format("Jan 2"))
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s%s\n",
				ui.TaskStatusIcon(t.Status),
				t.Title,
				ui.PriorityStyle(t.Priority).Render(string(t.Priority)),
				due))
		}
	}

	if len(m.related) > 0 {
		b.WriteString("\n  " + bold.Render("Related wikis") + "\n\n")
		for _, doc := range m.related {
			b.WriteString("  - " + doc.Title + "\n")
		}
	}

	return b.String()
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
