package calview

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

// --- Custom delegate ---

type eventDelegate struct {
	now func() time.Time
}

func (d eventDelegate) Height() int                             { return 2 }
func (d eventDelegate) Spacing() int                            { return 0 }
func (d eventDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d eventDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ei, ok := item.(eventItem)
	if !ok {
		return
	}
	e := ei.event

	when := e.StartsAt.Format("Mon Jan 2 15:04")
	if e.AllDay {
		when = e.StartsAt.Format("Mon Jan 2") + " (all day)"
	}
	whenStyled := ui.StyleInfo.Render(when)
	if e.OnDay(d.now()) {
		whenStyled = ui.StyleSuccess.Render(when + " [today]")
	}

	line1 := fmt.Sprintf(" %s  %s", whenStyled, e.Title)
	meta := e.OperationName
	if e.Location != "" {
		if meta != "" {
			meta += "  @ "
		}
		meta += e.Location
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

type eventItem struct {
	event model.Event
}

func (e eventItem) FilterValue() string {
	return e.event.Title + " " + e.event.OperationName + " " + e.event.Location + " " + e.event.Region
}

// --- Model ---

type Model struct {
	list    list.Model
	events  []model.Event
	width   int
	height  int
	loading bool
	err     error
}

func New() Model {
	l := list.New(nil, eventDelegate{now: time.Now}, 0, 0)
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

func (m Model) Selected() *model.Event {
	if item, ok := m.list.SelectedItem().(eventItem); ok {
		return &item.event
	}
	return nil
}

// Select moves the cursor to the event with the given id, if present.
func (m *Model) Select(id string) {
	for i, it := range m.list.Items() {
		if ei, ok := it.(eventItem); ok && ei.event.ID == id {
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
	case ui.EventsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.events = msg.Events
		items := make([]list.Item, len(msg.Events))
		for i, e := range msg.Events {
			items[i] = eventItem{event: e}
		}
		cmd := m.list.SetItems(items)
		m.list.Select(upcomingIndex(msg.Events, time.Now()))
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

// upcomingIndex picks the first event that has not ended yet, so the cursor
// starts on today instead of the oldest entry.
func upcomingIndex(events []model.Event, now time.Time) int {
	for i, e := range events {
		end := e.EndsAt
		if end.IsZero() {
			end = e.StartsAt
		}
		if !end.Before(now) {
			return i
		}
	}
	if len(events) > 0 {
		return len(events) - 1
	}
	return 0
}

func (m Model) View() string {
	if m.loading {
		return "\n  Loading calendar..."
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v", m.err)
	}
	if len(m.list.Items()) == 0 {
		return "\n  No events scheduled."
	}
	return m.list.View()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{ui.Keys.Search, ui.Keys.Filter, ui.Keys.Refresh}
}
