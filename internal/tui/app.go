package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/bulk"
	"github.com/altinukshini/fieldops-tui/internal/config"
	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/search"
	"github.com/altinukshini/fieldops-tui/internal/store"
	"github.com/altinukshini/fieldops-tui/internal/tui/calview"
	"github.com/altinukshini/fieldops-tui/internal/tui/confirm"
	"github.com/altinukshini/fieldops-tui/internal/tui/journalview"
	"github.com/altinukshini/fieldops-tui/internal/tui/opdetails"
	"github.com/altinukshini/fieldops-tui/internal/tui/opsview"
	"github.com/altinukshini/fieldops-tui/internal/tui/pageview"
	"github.com/altinukshini/fieldops-tui/internal/tui/quickadd"
	"github.com/altinukshini/fieldops-tui/internal/tui/searchview"
	"github.com/altinukshini/fieldops-tui/internal/tui/tasksview"
	"github.com/altinukshini/fieldops-tui/internal/tui/wikisview"
	"github.com/altinukshini/fieldops-tui/internal/ui"
)

type View int

const (
	ViewOperations View = iota
	ViewTasks
	ViewCalendar
	ViewWikis
	ViewJournal
)

type Pane int

const (
	PaneLeft Pane = iota
	PaneRight
)

type App struct {
	cfg          config.Config
	store        *store.Store
	orchestrator *search.Orchestrator
	maintainer   *search.Maintainer
	recents      *search.RecentStore

	// Entity activations from the search engine land here; a pump command
	// turns them into OpenEntityMsg.
	openCh chan ui.OpenEntityMsg

	// Views
	opsView       opsview.Model
	opDetails     opdetails.Model
	tasksView     tasksview.Model
	calView       calview.Model
	wikisView     wikisview.Model
	journalView   journalview.Model
	pageView      pageview.Model
	searchView    searchview.Model
	confirmDialog confirm.Model
	quickAdd      quickadd.Model

	// Cached for the quick-add operation picker
	operations []model.Operation

	// State
	currentView    View
	focusedPane    Pane
	width          int
	height         int
	status         string
	showHelp       bool
	pageFullScreen bool
}

func NewApp(cfg config.Config, st *store.Store) App {
	providers := search.Providers{
		Operations: st,
		Tasks:      st,
		Wikis:      st,
		Events:     st,
	}
	openCh := make(chan ui.OpenEntityMsg, 8)
	orch := search.NewOrchestrator(providers, cfg.SectionCap, cfg.Debounce(),
		func(t model.EntityType, id string) {
			openCh <- ui.OpenEntityMsg{Type: t, ID: id}
		})
	recents := search.NewRecentStore(st.Prefs(), cfg.RecentLimit)

	return App{
		cfg:          cfg,
		store:        st,
		orchestrator: orch,
		maintainer:   search.NewMaintainer(search.NewDocStore(), providers),
		recents:      recents,
		openCh:       openCh,
		opsView:      opsview.New(),
		opDetails:    opdetails.New(),
		tasksView:    tasksview.New(),
		calView:      calview.New(),
		wikisView:    wikisview.New(),
		journalView:  journalview.New(),
		pageView:     pageview.New(),
		searchView:   searchview.New(recents),
		currentView:  ViewOperations,
		focusedPane:  PaneLeft,
		status:       "Loading operations...",
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.loadOperations(),
		a.loadTasks(),
		a.loadEvents(),
		a.loadWikis(),
		a.loadJournals(),
		a.rebuildIndex(),
		a.waitForResults(),
		a.waitForOpen(),
	)
}

// --- Data loading commands ---

func (a App) loadOperations() tea.Cmd {
	st := a.store
	return func() tea.Msg {
		ops, err := st.ListOperations(context.Background())
		return ui.OperationsLoadedMsg{Operations: ops, Err: err}
	}
}

func (a App) loadOperationTasks(operationID string) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		tasks, err := st.ListTasksForOperation(context.Background(), operationID)
		return ui.OperationTasksMsg{OperationID: operationID, Tasks: tasks, Err: err}
	}
}

func (a App) loadTasks() tea.Cmd {
	st := a.store
	return func() tea.Msg {
		tasks, err := st.ListTasks(context.Background())
		return ui.TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func (a App) loadEvents() tea.Cmd {
	st := a.store
	return func() tea.Msg {
		events, err := st.ListEvents(context.Background())
		return ui.EventsLoadedMsg{Events: events, Err: err}
	}
}

func (a App) loadWikis() tea.Cmd {
	st := a.store
	return func() tea.Msg {
		wikis, err := st.ListWikis(context.Background())
		return ui.WikisLoadedMsg{Wikis: wikis, Err: err}
	}
}

func (a App) loadJournals() tea.Cmd {
	st := a.store
	return func() tea.Msg {
		entries, err := st.ListJournals(context.Background())
		return ui.JournalsLoadedMsg{Entries: entries, Err: err}
	}
}

func (a App) loadWikiPage(id string) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		w, err := st.GetWiki(context.Background(), id)
		return ui.WikiLoadedMsg{Wiki: w, Err: err}
	}
}

func (a App) rebuildIndex() tea.Cmd {
	maint := a.maintainer
	return func() tea.Msg {
		count, err := maint.RebuildAll(context.Background())
		return ui.IndexRebuiltMsg{Count: count, Err: err}
	}
}

// --- Search plumbing ---

// waitForResults blocks on the orchestrator's channel; re-armed after every
// delivery so the UI keeps receiving.
func (a App) waitForResults() tea.Cmd {
	results := a.orchestrator.Results()
	return func() tea.Msg {
		return ui.SearchResultsMsg{Results: <-results}
	}
}

func (a App) waitForOpen() tea.Cmd {
	ch := a.openCh
	return func() tea.Msg {
		return <-ch
	}
}

// --- Action commands ---

func (a App) doSaveTask(t *model.Task) tea.Cmd {
	st := a.store
	maint := a.maintainer
	return func() tea.Msg {
		if err := st.SaveTask(context.Background(), t); err != nil {
			return ui.ActionResultMsg{Action: "Add task", Err: err}
		}
		maint.IndexDocument(search.DocumentForTask(*t))
		return ui.ActionResultMsg{Action: "Add task"}
	}
}

func (a App) doSaveJournal(j *model.Journal) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		err := st.SaveJournal(context.Background(), j)
		return ui.ActionResultMsg{Action: "Add journal entry", Err: err}
	}
}

func (a App) doToggleTask(t model.Task) tea.Cmd {
	st := a.store
	maint := a.maintainer
	return func() tea.Msg {
		t.Status = t.NextStatus()
		if err := st.SaveTask(context.Background(), &t); err != nil {
			return ui.ActionResultMsg{Action: "Toggle task", Err: err}
		}
		maint.IndexDocument(search.DocumentForTask(t))
		return ui.ActionResultMsg{Action: "Toggle task"}
	}
}

func (a App) doDeleteOperation(id string) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		err := st.DeleteOperation(context.Background(), id)
		return ui.ActionResultMsg{Action: "Delete operation", Err: err}
	}
}

func (a App) doDeleteTask(id string) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		err := st.DeleteTask(context.Background(), id)
		return ui.ActionResultMsg{Action: "Delete task", Err: err}
	}
}

func (a App) doDeleteEvent(id string) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		err := st.DeleteEvent(context.Background(), id)
		return ui.ActionResultMsg{Action: "Delete event", Err: err}
	}
}

func (a App) doDeleteWiki(id string) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		err := st.DeleteWiki(context.Background(), id)
		return ui.ActionResultMsg{Action: "Delete wiki", Err: err}
	}
}

func (a App) doDeleteJournal(id string) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		err := st.DeleteJournal(context.Background(), id)
		return ui.ActionResultMsg{Action: "Delete journal entry", Err: err}
	}
}

// doDeleteDoneTasks clears every completed task in one sweep.
func (a App) doDeleteDoneTasks() tea.Cmd {
	st := a.store
	return func() tea.Msg {
		ctx := context.Background()
		tasks, err := st.ListTasks(ctx)
		if err != nil {
			return ui.ActionResultMsg{Action: "Delete done tasks", Err: err}
		}
		done := bulk.FilterTasks(tasks, bulk.Filter{Status: model.TaskDone})
		if len(done) == 0 {
			return ui.StatusMsg{Text: "No completed tasks to delete"}
		}
		ids := make([]string, len(done))
		for i, t := range done {
			ids[i] = t.ID
		}
		result, err := bulk.DeleteTasks(ctx, st, ids, nil)
		if err != nil {
			return ui.ActionResultMsg{Action: "Delete done tasks", Err: err}
		}
		if result.Failed > 0 {
			return ui.ActionResultMsg{
				Action: fmt.Sprintf("Delete done tasks (%d/%d)", result.Completed, len(ids)),
				Err:    result.Errors[0],
			}
		}
		return ui.ActionResultMsg{Action: fmt.Sprintf("Delete done tasks (%d)", result.Completed)}
	}
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Channel deliveries are handled before any overlay gate. The waits are
	// one-shot commands, so every delivery must re-arm its pump here; an
	// early return from a dialog branch would otherwise silence search for
	// the rest of the session.
	switch msg := msg.(type) {
	case ui.SearchResultsMsg:
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		return &a, tea.Batch(cmd, a.waitForResults())
	case ui.OpenEntityMsg:
		cmds = append(cmds, a.openEntity(msg)...)
		return &a, tea.Batch(append(cmds, a.waitForOpen())...)
	}

	// Confirm dialog result (arrives AFTER the dialog deactivates itself)
	if result, ok := msg.(confirm.ResultMsg); ok {
		if result.Confirmed {
			switch result.Action {
			case "delete-operation":
				a.status = "Deleting operation..."
				cmds = append(cmds, a.doDeleteOperation(result.Data.(string)))
			case "delete-task":
				a.status = "Deleting task..."
				cmds = append(cmds, a.doDeleteTask(result.Data.(string)))
			case "delete-event":
				a.status = "Deleting event..."
				cmds = append(cmds, a.doDeleteEvent(result.Data.(string)))
			case "delete-wiki":
				a.status = "Deleting wiki..."
				cmds = append(cmds, a.doDeleteWiki(result.Data.(string)))
			case "delete-journal":
				a.status = "Deleting journal entry..."
				cmds = append(cmds, a.doDeleteJournal(result.Data.(string)))
			case "delete-done-tasks":
				a.status = "Deleting completed tasks..."
				cmds = append(cmds, a.doDeleteDoneTasks())
			case "rebuild-index":
				a.status = "Rebuilding index..."
				cmds = append(cmds, a.rebuildIndex())
			}
		}
		return &a, tea.Batch(cmds...)
	}

	// Confirm dialog input (key events while the dialog is showing)
	if a.confirmDialog.IsActive() {
		var cmd tea.Cmd
		a.confirmDialog, cmd = a.confirmDialog.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return &a, tea.Batch(cmds...)
	}

	// Quick-add result
	if result, ok := msg.(quickadd.ResultMsg); ok {
		if result.Applied {
			switch {
			case result.Task != nil:
				a.status = "Saving task..."
				cmds = append(cmds, a.doSaveTask(result.Task))
			case result.Journal != nil:
				a.status = "Saving journal entry..."
				cmds = append(cmds, a.doSaveJournal(result.Journal))
			}
		}
		return &a, tea.Batch(cmds...)
	}

	// Quick-add input
	if a.quickAdd.IsActive() {
		var cmd tea.Cmd
		a.quickAdd, cmd = a.quickAdd.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return &a, tea.Batch(cmds...)
	}

	// Keystrokes feed the orchestrator; it debounces and publishes.
	switch msg := msg.(type) {
	case searchview.QueryChangedMsg:
		a.orchestrator.Submit(msg.Query)
		return &a, nil
	case searchview.RerunMsg:
		a.orchestrator.Submit(msg.Query)
		return &a, nil
	}

	// Search overlay owns all input while active.
	if a.searchView.IsActive() {
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		return &a, cmd
	}

	// Full-screen page search mode: keys go straight to the reader.
	if _, isKey := msg.(tea.KeyMsg); isKey && a.pageFullScreen && a.pageView.IsSearching() {
		var cmd tea.Cmd
		a.pageView, cmd = a.pageView.Update(msg)
		return &a, cmd
	}

	// List filter mode: keys go directly to the filtering list, skipping
	// app-level handlers (tab switching, quit, etc).
	if _, isKey := msg.(tea.KeyMsg); isKey && a.isListFiltering() {
		var cmd tea.Cmd
		switch a.currentView {
		case ViewOperations:
			a.opsView, cmd = a.opsView.Update(msg)
		case ViewTasks:
			a.tasksView, cmd = a.tasksView.Update(msg)
		case ViewCalendar:
			a.calView, cmd = a.calView.Update(msg)
		case ViewWikis:
			a.wikisView, cmd = a.wikisView.Update(msg)
		case ViewJournal:
			a.journalView, cmd = a.journalView.Update(msg)
		}
		cmds = append(cmds, cmd)
		return &a, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()

	case tea.KeyMsg:
		// Help overlay dismisses on any key
		if a.showHelp {
			a.showHelp = false
			return &a, nil
		}

		if a.pageFullScreen {
			switch msg.String() {
			case "esc", "backspace", "q":
				a.pageFullScreen = false
				return &a, nil
			default:
				var cmd tea.Cmd
				a.pageView, cmd = a.pageView.Update(msg)
				return &a, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			a.orchestrator.Close()
			return &a, tea.Quit

		case "?":
			a.showHelp = true
			return &a, nil

		case "tab":
			if a.currentView == ViewOperations {
				if a.focusedPane == PaneLeft {
					a.focusedPane = PaneRight
				} else {
					a.focusedPane = PaneLeft
				}
			}
		case "shift+tab":
			if a.currentView == ViewOperations {
				if a.focusedPane == PaneRight {
					a.focusedPane = PaneLeft
				} else {
					a.focusedPane = PaneRight
				}
			}

		case "1", "2", "3", "4", "5":
			a.pageFullScreen = false
			switch msg.String() {
			case "1":
				if a.currentView != ViewOperations {
					a.currentView = ViewOperations
					a.focusedPane = PaneLeft
					a.status = "Operations"
					cmds = append(cmds, a.loadOperations())
				}
			case "2":
				if a.currentView != ViewTasks {
					a.currentView = ViewTasks
					a.status = "Tasks"
					cmds = append(cmds, a.loadTasks())
				}
			case "3":
				if a.currentView != ViewCalendar {
					a.currentView = ViewCalendar
					a.status = "Calendar"
					cmds = append(cmds, a.loadEvents())
				}
			case "4":
				if a.currentView != ViewWikis {
					a.currentView = ViewWikis
					a.status = "Wikis"
					cmds = append(cmds, a.loadWikis())
				}
			case "5":
				if a.currentView != ViewJournal {
					a.currentView = ViewJournal
					a.status = "Journal"
					cmds = append(cmds, a.loadJournals())
				}
			}

		case "/":
			a.searchView.Activate()
			return &a, nil

		case "a":
			switch a.currentView {
			case ViewJournal:
				a.quickAdd = quickadd.New(quickadd.ModeJournal, nil)
			default:
				a.quickAdd = quickadd.New(quickadd.ModeTask, a.operations)
			}
			a.quickAdd.SetSize(a.width, a.height)
			return &a, nil

		case "I":
			a.confirmDialog = confirm.New(
				"Rebuild Search Index",
				"Re-index all operations, tasks, wikis and events?",
				"rebuild-index", nil,
			)
			a.confirmDialog.SetSize(a.width, a.height)
			return &a, nil

		case "r":
			switch a.currentView {
			case ViewOperations:
				a.status = "Refreshing operations..."
				cmds = append(cmds, a.loadOperations())
			case ViewTasks:
				a.status = "Refreshing tasks..."
				cmds = append(cmds, a.loadTasks())
			case ViewCalendar:
				a.status = "Refreshing events..."
				cmds = append(cmds, a.loadEvents())
			case ViewWikis:
				a.status = "Refreshing wikis..."
				cmds = append(cmds, a.loadWikis())
			case ViewJournal:
				a.status = "Refreshing journal..."
				cmds = append(cmds, a.loadJournals())
			}

		case "d":
			if dialog, ok := a.deleteDialogForSelection(); ok {
				a.confirmDialog = dialog
				a.confirmDialog.SetSize(a.width, a.height)
			}
			return &a, nil

		case "D":
			if a.currentView == ViewTasks {
				a.confirmDialog = confirm.New(
					"Delete Completed Tasks",
					"Delete ALL completed tasks? This cannot be undone.",
					"delete-done-tasks", nil,
				)
				a.confirmDialog.SetSize(a.width, a.height)
			}
			return &a, nil

		case "enter":
			switch a.currentView {
			case ViewOperations:
				if a.focusedPane == PaneLeft {
					a.focusedPane = PaneRight
					return &a, nil
				}
			case ViewWikis:
				if w := a.wikisView.Selected(); w != nil {
					a.pageView.SetContent(w.Title, w.OperationName, w.Content)
					a.pageFullScreen = true
					a.propagateSize()
					return &a, nil
				}
			case ViewJournal:
				if j := a.journalView.Selected(); j != nil {
					a.pageView.SetContent(j.Title, j.Day.Format("Mon Jan 2 2006"), j.Body)
					a.pageFullScreen = true
					a.propagateSize()
					return &a, nil
				}
			}

		case "esc":
			if a.currentView == ViewOperations && a.focusedPane == PaneRight {
				a.focusedPane = PaneLeft
				return &a, nil
			}
		}

	case opsview.SelectedMsg:
		if op := a.opsView.Selected(); op != nil && op.ID == msg.OperationID {
			a.opDetails.SetOperation(op)
			a.opDetails.SetRelated(a.maintainer.Store().Lookup(model.EntityWiki, op.Name, 3))
			cmds = append(cmds, a.loadOperationTasks(msg.OperationID))
		}

	case ui.OperationTasksMsg:
		if op := a.opsView.Selected(); op != nil && op.ID == msg.OperationID {
			a.opDetails.SetTasks(msg.Tasks, msg.Err)
		}

	case tasksview.ToggleRequestMsg:
		cmds = append(cmds, a.doToggleTask(msg.Task))

	case ui.OperationsLoadedMsg:
		if msg.Err == nil {
			a.operations = msg.Operations
			a.status = fmt.Sprintf("%d operations", len(msg.Operations))
		} else {
			a.status = fmt.Sprintf("Error: %v", msg.Err)
		}

	case ui.TasksLoadedMsg:
		if msg.Err == nil {
			open := 0
			for _, t := range msg.Tasks {
				if t.Status != model.TaskDone {
					open++
				}
			}
			a.status = fmt.Sprintf("%d tasks, %d open", len(msg.Tasks), open)
		} else {
			a.status = fmt.Sprintf("Error: %v", msg.Err)
		}

	case ui.EventsLoadedMsg:
		if msg.Err == nil {
			a.status = fmt.Sprintf("%d events", len(msg.Events))
		} else {
			a.status = fmt.Sprintf("Error: %v", msg.Err)
		}

	case ui.WikisLoadedMsg:
		if msg.Err == nil {
			a.status = fmt.Sprintf("%d wiki pages", len(msg.Wikis))
		} else {
			a.status = fmt.Sprintf("Error: %v", msg.Err)
		}

	case ui.JournalsLoadedMsg:
		if msg.Err == nil {
			a.status = fmt.Sprintf("%d journal entries", len(msg.Entries))
		} else {
			a.status = fmt.Sprintf("Error: %v", msg.Err)
		}

	case ui.WikiLoadedMsg:
		if msg.Err == nil && msg.Wiki != nil {
			a.pageView.SetContent(msg.Wiki.Title, msg.Wiki.OperationName, msg.Wiki.Content)
			a.pageFullScreen = true
			a.propagateSize()
		} else if msg.Err != nil {
			a.status = fmt.Sprintf("Error: %v", msg.Err)
		}

	case ui.IndexRebuiltMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("Index error: %v", msg.Err)
		} else {
			a.status = fmt.Sprintf("Indexed %d entities", msg.Count)
		}

	case ui.ActionResultMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("%s: %v", msg.Action, msg.Err)
		} else {
			a.status = fmt.Sprintf("%s: done", msg.Action)
			cmds = append(cmds, a.reloadCurrent()...)
			if strings.HasPrefix(msg.Action, "Delete") {
				cmds = append(cmds, a.rebuildIndex())
			}
		}

	case ui.StatusMsg:
		a.status = msg.Text
	}

	// Propagate to sub-views.
	// Skip WindowSizeMsg, handled by propagateSize() with per-pane dimensions.
	if _, isResize := msg.(tea.WindowSizeMsg); !isResize {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			if !a.pageFullScreen {
				var cmd tea.Cmd
				switch a.currentView {
				case ViewOperations:
					if a.focusedPane == PaneLeft {
						a.opsView, cmd = a.opsView.Update(msg)
					} else {
						a.opDetails, cmd = a.opDetails.Update(msg)
					}
				case ViewTasks:
					a.tasksView, cmd = a.tasksView.Update(msg)
				case ViewCalendar:
					a.calView, cmd = a.calView.Update(msg)
				case ViewWikis:
					a.wikisView, cmd = a.wikisView.Update(msg)
				case ViewJournal:
					a.journalView, cmd = a.journalView.Update(msg)
				}
				cmds = append(cmds, cmd)
			}
		} else {
			// Data messages fan out so off-screen tabs stay current.
			var cmd tea.Cmd
			a.opsView, cmd = a.opsView.Update(msg)
			cmds = append(cmds, cmd)
			a.tasksView, cmd = a.tasksView.Update(msg)
			cmds = append(cmds, cmd)
			a.calView, cmd = a.calView.Update(msg)
			cmds = append(cmds, cmd)
			a.wikisView, cmd = a.wikisView.Update(msg)
			cmds = append(cmds, cmd)
			a.journalView, cmd = a.journalView.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return &a, tea.Batch(cmds...)
}

// openEntity jumps to the tab holding the activated entity and selects it.
func (a *App) openEntity(msg ui.OpenEntityMsg) []tea.Cmd {
	var cmds []tea.Cmd
	a.searchView.Deactivate()
	a.pageFullScreen = false

	switch msg.Type {
	case model.EntityOperation:
		a.currentView = ViewOperations
		a.focusedPane = PaneLeft
		a.opsView.Select(msg.ID)
		if op := a.opsView.Selected(); op != nil {
			a.opDetails.SetOperation(op)
			a.opDetails.SetRelated(a.maintainer.Store().Lookup(model.EntityWiki, op.Name, 3))
			cmds = append(cmds, a.loadOperationTasks(op.ID))
		}
	case model.EntityTask:
		a.currentView = ViewTasks
		a.tasksView.Select(msg.ID)
	case model.EntityEvent:
		a.currentView = ViewCalendar
		a.calView.Select(msg.ID)
	case model.EntityWiki:
		a.currentView = ViewWikis
		a.wikisView.Select(msg.ID)
		cmds = append(cmds, a.loadWikiPage(msg.ID))
	}
	return cmds
}

func (a App) deleteDialogForSelection() (confirm.Model, bool) {
	switch a.currentView {
	case ViewOperations:
		if op := a.opsView.Selected(); op != nil {
			return confirm.New(
				"Delete Operation",
				fmt.Sprintf("Delete operation '%s'? This cannot be undone.", op.Name),
				"delete-operation", op.ID,
			), true
		}
	case ViewTasks:
		if t := a.tasksView.Selected(); t != nil {
			return confirm.New(
				"Delete Task",
				fmt.Sprintf("Delete task '%s'? This cannot be undone.", t.Title),
				"delete-task", t.ID,
			), true
		}
	case ViewCalendar:
		if e := a.calView.Selected(); e != nil {
			return confirm.New(
				"Delete Event",
				fmt.Sprintf("Delete event '%s'? This cannot be undone.", e.Title),
				"delete-event", e.ID,
			), true
		}
	case ViewWikis:
		if w := a.wikisView.Selected(); w != nil {
			return confirm.New(
				"Delete Wiki Page",
				fmt.Sprintf("Delete wiki page '%s'? This cannot be undone.", w.Title),
				"delete-wiki", w.ID,
			), true
		}
	case ViewJournal:
		if j := a.journalView.Selected(); j != nil {
			return confirm.New(
				"Delete Journal Entry",
				fmt.Sprintf("Delete entry '%s'? This cannot be undone.", j.Title),
				"delete-journal", j.ID,
			), true
		}
	}
	return confirm.Model{}, false
}

func (a App) reloadCurrent() []tea.Cmd {
	var cmds []tea.Cmd
	switch a.currentView {
	case ViewOperations:
		cmds = append(cmds, a.loadOperations())
		if op := a.opsView.Selected(); op != nil {
			cmds = append(cmds, a.loadOperationTasks(op.ID))
		}
	case ViewTasks:
		cmds = append(cmds, a.loadTasks())
	case ViewCalendar:
		cmds = append(cmds, a.loadEvents())
	case ViewWikis:
		cmds = append(cmds, a.loadWikis())
	case ViewJournal:
		cmds = append(cmds, a.loadJournals())
	}
	return cmds
}

func (a App) isListFiltering() bool {
	switch a.currentView {
	case ViewOperations:
		return a.opsView.IsFiltering()
	case ViewTasks:
		return a.tasksView.IsFiltering()
	case ViewCalendar:
		return a.calView.IsFiltering()
	case ViewWikis:
		return a.wikisView.IsFiltering()
	case ViewJournal:
		return a.journalView.IsFiltering()
	}
	return false
}

func (a *App) propagateSize() {
	// Vertical budget:
	//   header(1) + tabs(1) + status(1) = 3 lines of chrome
	//   pane border top(1) + bottom(1) = 2 lines
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}

	// 2-pane layout: each border = 2 chars horizontal, 2 panes = 4
	leftW := a.width * 45 / 100
	rightW := a.width - leftW - 4
	if rightW < 1 {
		rightW = 1
	}

	a.opsView, _ = a.opsView.Update(
		tea.WindowSizeMsg{Width: leftW, Height: contentH})
	a.opDetails, _ = a.opDetails.Update(
		tea.WindowSizeMsg{Width: rightW, Height: contentH})
	a.tasksView, _ = a.tasksView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.calView, _ = a.calView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.wikisView, _ = a.wikisView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.journalView, _ = a.journalView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.pageView, _ = a.pageView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.searchView, _ = a.searchView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.quickAdd.SetSize(a.width, a.height)
	a.confirmDialog.SetSize(a.width, a.height)
}

// --- View ---

func (a App) View() string {
	header := RenderHeader(a.store.Path(), a.maintainer.Store().Len(), a.width)
	tabs := a.renderTabs()

	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}
	fullStyle := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)

	var content string
	switch {
	case a.showHelp:
		content = a.renderHelp()
	case a.confirmDialog.IsActive():
		content = a.confirmDialog.View()
	case a.quickAdd.IsActive():
		content = a.quickAdd.View()
	case a.searchView.IsActive():
		content = fullStyle.Render(a.searchView.View())
	case a.pageFullScreen:
		content = fullStyle.Render(a.pageView.View())
	default:
		switch a.currentView {
		case ViewOperations:
			content = a.renderOperationsLayout()
		case ViewTasks:
			content = fullStyle.Render(a.tasksView.View())
		case ViewCalendar:
			content = fullStyle.Render(a.calView.View())
		case ViewWikis:
			content = fullStyle.Render(a.wikisView.View())
		case ViewJournal:
			content = fullStyle.Render(a.journalView.View())
		}
	}

	statusBar := RenderStatusBar(a.status, a.contextHints(), a.width)

	// Hard clamp: content must never overflow the terminal.
	maxContentLines := a.height - 3
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + tabs + "\n" + content + "\n" + statusBar
}

func (a App) renderOperationsLayout() string {
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}

	leftW := a.width * 45 / 100
	rightW := a.width - leftW - 4
	if rightW < 1 {
		rightW = 1
	}

	leftStyle := ui.StylePane.Width(leftW).Height(contentH)
	rightStyle := ui.StylePane.Width(rightW).Height(contentH)
	if a.focusedPane == PaneLeft {
		leftStyle = ui.StylePaneFocused.Width(leftW).Height(contentH)
	} else {
		rightStyle = ui.StylePaneFocused.Width(rightW).Height(contentH)
	}

	left := leftStyle.Render(a.opsView.View())
	right := rightStyle.Render(a.opDetails.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a App) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeTab := tabStyle.Bold(true).Foreground(ui.ColorPrimary)
	inactiveTab := tabStyle.Foreground(ui.ColorMuted)

	labels := []string{"[1] Operations", "[2] Tasks", "[3] Calendar", "[4] Wikis", "[5] Journal"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if View(i) == a.currentView {
			rendered[i] = activeTab.Render(label)
		} else {
			rendered[i] = inactiveTab.Render(label)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (a App) contextHints() string {
	if a.searchView.IsActive() {
		return "enter:open  up/down:navigate  esc:close"
	}
	if a.pageFullScreen {
		if a.pageView.IsSearching() {
			return "enter:confirm  esc:cancel"
		}
		return "/:find  n/N:match  j/k:scroll  g/G:top/bot  esc:back"
	}
	if a.quickAdd.IsActive() {
		return "enter:save  tab:next field  h/l:cycle  esc:cancel"
	}
	if a.confirmDialog.IsActive() {
		return "y/n:confirm  esc:cancel"
	}

	switch a.currentView {
	case ViewOperations:
		if a.focusedPane == PaneRight {
			return "j/k:scroll  tab:pane  esc:back  /:search  ?:help"
		}
		return "enter:details  a:add task  d:delete  f:filter  /:search  ?:help"
	case ViewTasks:
		return "space:toggle  a:add  d:delete  D:clear done  f:filter  /:search  ?:help"
	case ViewCalendar:
		return "d:delete  f:filter  /:search  ?:help"
	case ViewWikis:
		return "enter:read  d:delete  f:filter  /:search  ?:help"
	case ViewJournal:
		return "enter:read  a:add entry  d:delete  f:filter  ?:help"
	}
	return "?:help  q:quit"
}

func (a App) renderHelp() string {
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	key := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + key.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("1-5", "Switch tab: Operations, Tasks, Calendar, Wikis, Journal"))
	b.WriteString(row("tab", "Switch pane (Operations tab)"))
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("enter", "Open / read selected item"))
	b.WriteString(row("esc", "Back / close overlay"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Search") + "\n\n")
	b.WriteString(row("/", "Search across all entities"))
	b.WriteString(row("task: wiki:", "Restrict to one category (also operation:, event:)"))
	b.WriteString(row("priority:high", "Task priority filter (high/medium/low)"))
	b.WriteString(row("due:today", "Task due filter (today/tomorrow/week/overdue)"))
	b.WriteString(row("region:", "Region filter (ops, tasks, events)"))
	b.WriteString(row("operation:", "Filter by parent operation name"))
	b.WriteString(row("I", "Rebuild search index"))

	b.WriteString("\n" + bold.Render("  Editing") + "\n\n")
	b.WriteString(row("a", "Quick-add task (journal entry on Journal tab)"))
	b.WriteString(row("space", "Cycle task status (Tasks tab)"))
	b.WriteString(row("d", "Delete selected item"))
	b.WriteString(row("D", "Delete all completed tasks (Tasks tab)"))
	b.WriteString(row("r", "Refresh current tab"))
	b.WriteString(row("f", "Filter list"))

	b.WriteString("\n" + bold.Render("  Reader") + "\n\n")
	b.WriteString(row("/", "Find in page"))
	b.WriteString(row("n / N", "Next / previous match"))
	b.WriteString(row("g / G", "Go to top / bottom"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}
