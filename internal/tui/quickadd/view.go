package quickadd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

// ---------------------------------------------------------------------------
// Modes and result message
// ---------------------------------------------------------------------------

type Mode int

const (
	ModeTask Mode = iota
	ModeJournal
)

// ResultMsg is emitted when the user saves or cancels the form. Exactly one
// of Task/Journal is set when Applied.
type ResultMsg struct {
	Applied bool
	Task    *model.Task
	Journal *model.Journal
}

// ---------------------------------------------------------------------------
// Field enum
// ---------------------------------------------------------------------------

type field int

const (
	fieldTitle field = iota
	fieldOperation
	fieldPriority
	fieldDue
	fieldRegion
	fieldBody
	taskFieldCount    = fieldRegion + 1
	journalFieldCount = 2 // title, body
)

var (
	priorityOptions = []model.TaskPriority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}
	dueOptions      = []string{"today", "tomorrow", "in 3 days", "in a week"}
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the quick-add overlay for capturing a task or a journal entry
// without leaving the current tab.
type Model struct {
	active     bool
	mode       Mode
	focused    field
	operations []model.Operation
	opIdx      int // -1 = none
	prioIdx    int
	dueIdx     int // -1 = no due date
	title      textinput.Model
	region     textinput.Model
	body       textinput.Model
	width      int
	height     int
}

// New creates the overlay in the active state. For ModeTask, operations
// populates the parent-operation picker.
func New(mode Mode, operations []model.Operation) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 128
	title.Width = 40
	title.Focus()

	region := textinput.New()
	region.Placeholder = "e.g. north"
	region.CharLimit = 64
	region.Width = 20

	body := textinput.New()
	body.Placeholder = "What happened today?"
	body.CharLimit = 512
	body.Width = 40

	return Model{
		active:     true,
		mode:       mode,
		operations: operations,
		opIdx:      -1,
		prioIdx:    1, // medium
		dueIdx:     -1,
		title:      title,
		region:     region,
		body:       body,
	}
}

// IsActive reports whether the overlay is currently visible.
func (m Model) IsActive() bool { return m.active }

// SetSize stores terminal dimensions so the overlay can centre itself.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Init satisfies the tea.Model interface.
func (m Model) Init() tea.Cmd { return nil }

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) fieldCount() field {
	if m.mode == ModeJournal {
		return journalFieldCount
	}
	return taskFieldCount
}

// journalField maps focus position to the actual field in journal mode,
// where only title and body exist.
func (m Model) current() field {
	if m.mode == ModeJournal && m.focused == 1 {
		return fieldBody
	}
	return m.focused
}

// Update handles key events while the overlay is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// When a text input is focused, it owns most keys.
	if m.isTextFieldFocused() {
		switch keyMsg.String() {
		case "esc":
			m.active = false
			return m, emitResult(ResultMsg{})
		case "enter":
			m.active = false
			return m, m.save()
		case "tab", "down":
			m.blurTextInputs()
			m.moveFocus(1)
			m.focusCurrentTextInput()
			return m, textinput.Blink
		case "shift+tab", "up":
			m.blurTextInputs()
			m.moveFocus(-1)
			m.focusCurrentTextInput()
			return m, textinput.Blink
		default:
			var cmd tea.Cmd
			switch m.current() {
			case fieldTitle:
				m.title, cmd = m.title.Update(msg)
			case fieldRegion:
				m.region, cmd = m.region.Update(msg)
			case fieldBody:
				m.body, cmd = m.body.Update(msg)
			}
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "j", "down", "tab":
		m.moveFocus(1)
		m.focusCurrentTextInput()
		return m, textinput.Blink
	case "k", "up", "shift+tab":
		m.moveFocus(-1)
		m.focusCurrentTextInput()
		return m, textinput.Blink

	// Cycle forward.
	case "l", "right":
		switch m.current() {
		case fieldOperation:
			m.opIdx = cycleForward(m.opIdx, len(m.operations))
		case fieldPriority:
			m.prioIdx = (m.prioIdx + 1) % len(priorityOptions)
		case fieldDue:
			m.dueIdx = cycleForward(m.dueIdx, len(dueOptions))
		}
		return m, nil

	// Cycle backward.
	case "h", "left":
		switch m.current() {
		case fieldOperation:
			m.opIdx = cycleBackward(m.opIdx, len(m.operations))
		case fieldPriority:
			m.prioIdx = (m.prioIdx - 1 + len(priorityOptions)) % len(priorityOptions)
		case fieldDue:
			m.dueIdx = cycleBackward(m.dueIdx, len(dueOptions))
		}
		return m, nil

	case "enter":
		m.active = false
		return m, m.save()

	case "esc":
		m.active = false
		return m, emitResult(ResultMsg{})
	}

	return m, nil
}

func (m Model) save() tea.Cmd {
	title := strings.TrimSpace(m.title.Value())
	if title == "" {
		return emitResult(ResultMsg{})
	}

	if m.mode == ModeJournal {
		return emitResult(ResultMsg{Applied: true, Journal: &model.Journal{
			Title: title,
			Body:  m.body.Value(),
			Day:   time.Now(),
		}})
	}

	t := &model.Task{
		Title:    title,
		Priority: priorityOptions[m.prioIdx],
		Status:   model.TaskOpen,
		Region:   strings.TrimSpace(m.region.Value()),
	}
	if m.opIdx >= 0 && m.opIdx < len(m.operations) {
		t.OperationID = m.operations[m.opIdx].ID
		t.OperationName = m.operations[m.opIdx].Name
	}
	if m.dueIdx >= 0 {
		t.DueAt = dueFromOption(m.dueIdx, time.Now())
	}
	return emitResult(ResultMsg{Applied: true, Task: t})
}

func dueFromOption(idx int, now time.Time) *time.Time {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	var due time.Time
	switch idx {
	case 0:
		due = endOfDay
	case 1:
		due = endOfDay.Add(24 * time.Hour)
	case 2:
		due = endOfDay.Add(3 * 24 * time.Hour)
	case 3:
		due = endOfDay.Add(7 * 24 * time.Hour)
	default:
		return nil
	}
	return &due
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if !m.active {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Width(12).Foreground(ui.ColorMuted)
	focusedLabelStyle := lipgloss.NewStyle().Width(12).Bold(true).Foreground(ui.ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))
	noneStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted).Italic(true)

	var rows []string
	addRow := func(f field, label, value string) {
		ls := labelStyle
		cursor := "  "
		if f == m.current() {
			ls = focusedLabelStyle
			cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, ls.Render(label), value))
	}

	addRow(fieldTitle, "Title:", m.title.View())

	if m.mode == ModeTask {
		opValue := noneStyle.Render("No operation")
		if m.opIdx >= 0 && m.opIdx < len(m.operations) {
			opValue = valueStyle.Render(m.operations[m.opIdx].Name)
		}
		addRow(fieldOperation, "Operation:", opValue)

		prio := priorityOptions[m.prioIdx]
		addRow(fieldPriority, "Priority:", ui.PriorityStyle(prio).Render(string(prio)))

		dueValue := noneStyle.Render("No due date")
		if m.dueIdx >= 0 && m.dueIdx < len(dueOptions) {
			dueValue = valueStyle.Render(dueOptions[m.dueIdx])
		}
		addRow(fieldDue, "Due:", dueValue)

		addRow(fieldRegion, "Region:", m.region.View())
	} else {
		addRow(fieldBody, "Entry:", m.body.View())
	}

	heading := "New Task"
	if m.mode == ModeJournal {
		heading = "New Journal Entry"
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		MarginBottom(1).
		Render(heading)

	help := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1).
		Render("enter: save  tab: next field  h/l: cycle  esc: cancel")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(rows, "\n"),
		help,
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(60)

	box := boxStyle.Render(body)

	// Centre the box in the terminal.
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box)
	}
	return box
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (m *Model) moveFocus(delta int) {
	next := int(m.focused) + delta
	count := int(m.fieldCount())
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.focused = field(next)
}

func (m Model) isTextFieldFocused() bool {
	return m.title.Focused() || m.region.Focused() || m.body.Focused()
}

func (m *Model) blurTextInputs() {
	m.title.Blur()
	m.region.Blur()
	m.body.Blur()
}

func (m *Model) focusCurrentTextInput() {
	switch m.current() {
	case fieldTitle:
		m.title.Focus()
	case fieldRegion:
		m.region.Focus()
	case fieldBody:
		m.body.Focus()
	}
}

// cycleForward advances the index by one. -1 means "none", 0..max-1 are the
// actual entries, and going past the last entry wraps back to -1.
func cycleForward(idx, count int) int {
	if count == 0 {
		return -1
	}
	idx++
	if idx >= count {
		idx = -1
	}
	return idx
}

// cycleBackward is the reverse of cycleForward.
func cycleBackward(idx, count int) int {
	if count == 0 {
		return -1
	}
	idx--
	if idx < -1 {
		idx = count - 1
	}
	return idx
}

func emitResult(r ResultMsg) tea.Cmd {
	return func() tea.Msg { return r }
}
