package wikisview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

// --- Custom delegate ---

type wikiDelegate struct{}

func (d wikiDelegate) Height() int                             { return 2 }
func (d wikiDelegate) Spacing() int                            { return 0 }
func (d wikiDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d wikiDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	wi, ok := item.(wikiItem)
	if !ok {
		return
	}
	page := wi.wiki

	tags := ""
	if len(page.Tags) > 0 {
		tags = ui.StyleInfo.Render("#" + strings.Join(page.Tags, " #"))
	}
	op := ""
	if page.OperationName != "" {
		op = ui.StyleMuted.Render(page.OperationName)
	}

	line1 := fmt.Sprintf(" %s  %s  %s", page.Title, tags, op)
	line2 := "    " + ui.StyleMuted.Render(page.Excerpt(60))

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// --- Item ---

type wikiItem struct {
	wiki model.Wiki
}

func (w wikiItem) FilterValue() string {
	return w.wiki.Title + " " + strings.Join(w.wiki.Tags, " ") + " " + w.wiki.OperationName
}

// --- Model ---

type Model struct {
	list    list.Model
	wikis   []model.Wiki
	width   int
	height  int
	loading bool
	err     error
}

func New() Model {
	l := list.New(nil, wikiDelegate{}, 0, 0)
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

func (m Model) Selected() *model.Wiki {
	if item, ok := m.list.SelectedItem().(wikiItem); ok {
		return &item.wiki
	}
	return nil
}

// Select moves the cursor to the page with the given id, if present.
func (m *Model) Select(id string) {
	for i, it := range m.list.Items() {
		if wi, ok := it.(wikiItem); ok && wi.wiki.ID == id {
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
	case ui.WikisLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.wikis = msg.Wikis
		items := make([]list.Item, len(msg.Wikis))
		for i, w := range msg.Wikis {
			items[i] = wikiItem{wiki: w}
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
		return "\n  Loading wiki pages..."
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v", m.err)
	}
	if len(m.list.Items()) == 0 {
		return "\n  No wiki pages yet."
	}
	return m.list.View()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{ui.Keys.Enter, ui.Keys.Search, ui.Keys.Filter}
}
