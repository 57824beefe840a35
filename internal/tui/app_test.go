package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/fieldops-tui/internal/config"
	"github.com/altinukshini/fieldops-tui/internal/store"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := config.Default()
	cfg.DataDir = st.Path()
	return NewApp(cfg, st)
}

func TestNewAppStartsOnOperations(t *testing.T) {
	a := newTestApp(t)
	if a.currentView != ViewOperations {
		t.Errorf("currentView = %v, want ViewOperations", a.currentView)
	}
	if a.focusedPane != PaneLeft {
		t.Errorf("focusedPane = %v, want PaneLeft", a.focusedPane)
	}
	if a.Init() == nil {
		t.Error("Init() returned no command")
	}
}

func TestTabKeysSwitchViews(t *testing.T) {
	a := newTestApp(t)
	a.width, a.height = 100, 30

	tests := []struct {
		key  string
		want View
	}{
		{"2", ViewTasks},
		{"3", ViewCalendar},
		{"4", ViewWikis},
		{"5", ViewJournal},
		{"1", ViewOperations},
	}
	var m tea.Model = &a
	for _, tt := range tests {
		m, _ = m.(*App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
		if got := m.(*App).currentView; got != tt.want {
			t.Errorf("after %q: currentView = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRenderTabsMarksActive(t *testing.T) {
	a := newTestApp(t)
	a.currentView = ViewWikis
	tabs := a.renderTabs()
	for _, label := range []string{"[1] Operations", "[2] Tasks", "[3] Calendar", "[4] Wikis", "[5] Journal"} {
		if !strings.Contains(tabs, label) {
			t.Errorf("renderTabs() missing %q", label)
		}
	}
}

func TestDeleteDialogNeedsSelection(t *testing.T) {
	a := newTestApp(t)
	// Empty lists on every tab: no dialog should be offered.
	for _, v := range []View{ViewOperations, ViewTasks, ViewCalendar, ViewWikis, ViewJournal} {
		a.currentView = v
		if _, ok := a.deleteDialogForSelection(); ok {
			t.Errorf("view %v: got a delete dialog with nothing selected", v)
		}
	}
}

func TestActionResultUpdatesStatus(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(ui.ActionResultMsg{Action: "Add task"})
	if got := m.(*App).status; got != "Add task: done" {
		t.Errorf("status = %q, want %q", got, "Add task: done")
	}
}

func TestSearchOverlayActivation(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.(*App).searchView.IsActive() {
		t.Error("search overlay not active after /")
	}
}

func TestResultDeliveryRearmsPumpDuringQuickAdd(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if !m.(*App).quickAdd.IsActive() {
		t.Fatal("quick-add overlay not active after a")
	}

	// A result landing while the overlay is up must still return the wait
	// command, otherwise nothing ever reads the orchestrator channel again.
	m, cmd := m.(*App).Update(ui.SearchResultsMsg{})
	if cmd == nil {
		t.Fatal("result delivery returned no command; results pump went dead")
	}
	if !m.(*App).quickAdd.IsActive() {
		t.Error("background result delivery closed the quick-add overlay")
	}
}

func TestResultDeliveryRearmsPumpDuringConfirm(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("I")})
	if !m.(*App).confirmDialog.IsActive() {
		t.Fatal("confirm dialog not active after I")
	}

	_, cmd := m.(*App).Update(ui.SearchResultsMsg{})
	if cmd == nil {
		t.Fatal("result delivery returned no command; results pump went dead")
	}
}
