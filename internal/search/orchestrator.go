package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/altinukshini/fieldops-tui/internal/logger"
	"github.com/altinukshini/fieldops-tui/internal/model"
)

// Entity providers are read-only collaborators; the engine never mutates
// entity state.
type (
	OperationProvider interface {
		ListOperations(ctx context.Context) ([]model.Operation, error)
	}
	TaskProvider interface {
		ListTasks(ctx context.Context) ([]model.Task, error)
	}
	WikiProvider interface {
		ListWikis(ctx context.Context) ([]model.Wiki, error)
	}
	EventProvider interface {
		ListEvents(ctx context.Context) ([]model.Event, error)
	}
)

// Providers bundles the per-domain listing collaborators. A nil provider
// behaves like an empty category.
type Providers struct {
	Operations OperationProvider
	Tasks      TaskProvider
	Wikis      WikiProvider
	Events     EventProvider
}

// ActivateFunc is called when a search hit is activated, identifying the
// entity to open.
type ActivateFunc func(t model.EntityType, id string)

// Orchestrator turns raw keystrokes into published search results. Submit
// restarts the debounce timer; when it fires, execution runs on its own
// goroutine under a context that any newer submission cancels, and only the
// newest generation's results reach the Results channel: last write wins by
// submission order, not completion order.
type Orchestrator struct {
	providers  Providers
	sectionCap int
	debounce   *Debouncer
	onActivate ActivateFunc
	results    chan Results
	now        func() time.Time

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewOrchestrator(p Providers, sectionCap int, delay time.Duration, onActivate ActivateFunc) *Orchestrator {
	if sectionCap <= 0 {
		sectionCap = 5
	}
	return &Orchestrator{
		providers:  p,
		sectionCap: sectionCap,
		debounce:   NewDebouncer(delay),
		onActivate: onActivate,
		results:    make(chan Results, 1),
		now:        time.Now,
	}
}

// Results delivers at most the newest execution's outcome.
func (o *Orchestrator) Results() <-chan Results {
	return o.results
}

// Submit schedules a debounced execution of the raw query. Superseded input
// never executes.
func (o *Orchestrator) Submit(raw string) {
	o.debounce.Trigger(func() { o.dispatch(raw) })
}

// Close stops the debounce timer and cancels any in-flight execution.
func (o *Orchestrator) Close() {
	o.debounce.Stop()
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()
}

func (o *Orchestrator) dispatch(raw string) {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel
	o.gen++
	gen := o.gen
	o.mu.Unlock()

	go func() {
		res := o.Execute(ctx, raw)

		o.mu.Lock()
		stale := gen != o.gen
		o.mu.Unlock()
		if stale || ctx.Err() != nil {
			return // superseded: discard unpublished
		}
		o.publish(res)
	}()
}

// publish replaces any unconsumed result so the UI only ever sees the newest.
func (o *Orchestrator) publish(res Results) {
	for {
		select {
		case o.results <- res:
			return
		default:
		}
		select {
		case <-o.results:
		default:
		}
	}
}

// Execute runs one query synchronously: parse filters, fetch each un-excluded
// category, fuzzy-match free text over the primary text fields, apply
// structural filters, cap each section and emit them in fixed order. A
// provider failure degrades that category to empty and never aborts the rest.
func (o *Orchestrator) Execute(ctx context.Context, raw string) Results {
	if strings.TrimSpace(raw) == "" {
		return Results{Initial: true}
	}

	f := ParseFilters(raw)
	if f.CleanQuery == "" && !f.HasFilter() {
		return Results{Initial: true}
	}

	res := Results{Query: raw}
	for _, t := range model.SearchableTypes {
		if f.Type != "" && f.Type != t {
			continue
		}
		if ctx.Err() != nil {
			return res
		}
		sec := o.collect(ctx, t, f)
		if len(sec.Items) > 0 {
			res.Sections = append(res.Sections, sec)
		}
	}
	return res
}

func (o *Orchestrator) collect(ctx context.Context, t model.EntityType, f Filters) Section {
	sec := Section{Type: t}
	add := func(id string, display any) bool {
		sec.Items = append(sec.Items, o.item(t, id, display))
		return len(sec.Items) < o.sectionCap
	}

	switch t {
	case model.EntityOperation:
		if o.providers.Operations == nil {
			break
		}
		ops, err := o.providers.Operations.ListOperations(ctx)
		if err != nil {
			logger.Warn("search: operation provider failed: %v", err)
			break
		}
		for _, op := range ops {
			if o.matchOperation(op, f) && !add(op.ID, op) {
				break
			}
		}
	case model.EntityTask:
		if o.providers.Tasks == nil {
			break
		}
		tasks, err := o.providers.Tasks.ListTasks(ctx)
		if err != nil {
			logger.Warn("search: task provider failed: %v", err)
			break
		}
		for _, tk := range tasks {
			if o.matchTask(tk, f) && !add(tk.ID, tk) {
				break
			}
		}
	case model.EntityWiki:
		if o.providers.Wikis == nil {
			break
		}
		wikis, err := o.providers.Wikis.ListWikis(ctx)
		if err != nil {
			logger.Warn("search: wiki provider failed: %v", err)
			break
		}
		for _, w := range wikis {
			if o.matchWiki(w, f) && !add(w.ID, w) {
				break
			}
		}
	case model.EntityEvent:
		if o.providers.Events == nil {
			break
		}
		events, err := o.providers.Events.ListEvents(ctx)
		if err != nil {
			logger.Warn("search: event provider failed: %v", err)
			break
		}
		for _, e := range events {
			if o.matchEvent(e, f) && !add(e.ID, e) {
				break
			}
		}
	}
	return sec
}

func (o *Orchestrator) item(t model.EntityType, id string, display any) Item {
	return Item{
		Type:    t,
		ID:      id,
		Display: display,
		Activate: func() {
			if o.onActivate != nil {
				o.onActivate(t, id)
			}
		},
	}
}

// Priority and due are task concepts: when either filter is set, other
// categories cannot match. Region applies to operations, tasks and events;
// the operation tag matches operations by their own name and everything else
// by its parent operation.

func (o *Orchestrator) matchOperation(op model.Operation, f Filters) bool {
	if f.Priority != "" || f.Due != "" {
		return false
	}
	if f.Region != "" && !strings.EqualFold(op.Region, f.Region) {
		return false
	}
	if f.Operation != "" && !containsFold(op.Name, f.Operation) {
		return false
	}
	return MatchesAny(f.CleanQuery, op.Name, op.Description)
}

func (o *Orchestrator) matchTask(t model.Task, f Filters) bool {
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Due != "" && !o.matchDue(t, f.Due) {
		return false
	}
	if f.Region != "" && !strings.EqualFold(t.Region, f.Region) {
		return false
	}
	if f.Operation != "" && !containsFold(t.OperationName, f.Operation) {
		return false
	}
	return MatchesAny(f.CleanQuery, t.Title, t.Description)
}

func (o *Orchestrator) matchWiki(w model.Wiki, f Filters) bool {
	if f.Priority != "" || f.Due != "" || f.Region != "" {
		return false
	}
	if f.Operation != "" && !containsFold(w.OperationName, f.Operation) {
		return false
	}
	return MatchesAny(f.CleanQuery, w.Title, w.Content)
}

func (o *Orchestrator) matchEvent(e model.Event, f Filters) bool {
	if f.Priority != "" || f.Due != "" {
		return false
	}
	if f.Region != "" && !strings.EqualFold(e.Region, f.Region) {
		return false
	}
	if f.Operation != "" && !containsFold(e.OperationName, f.Operation) {
		return false
	}
	return MatchesAny(f.CleanQuery, e.Title, e.Description)
}

// matchDue applies due-tag semantics: today and tomorrow are calendar-day
// equality, week is the open interval (now, now+7d), overdue is a past due
// date on a task that is not done. Undated tasks never match a due tag.
func (o *Orchestrator) matchDue(t model.Task, due DueTag) bool {
	if t.DueAt == nil {
		return false
	}
	now := o.now()
	switch due {
	case DueToday:
		return t.DueOn(now)
	case DueTomorrow:
		// AddDate, not Add(24h): the next calendar day can be 23 or 25
		// hours away around a DST transition.
		return t.DueOn(now.AddDate(0, 0, 1))
	case DueWeek:
		return t.DueAt.After(now) && t.DueAt.Before(now.Add(7*24*time.Hour))
	case DueOverdue:
		return t.Overdue(now)
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
