package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// stubProviders implements all four listing interfaces over fixed slices.
type stubProviders struct {
	ops    []model.Operation
	tasks  []model.Task
	wikis  []model.Wiki
	events []model.Event

	opsErr    error
	tasksErr  error
	wikisErr  error
	eventsErr error
}

func (s *stubProviders) ListOperations(ctx context.Context) ([]model.Operation, error) {
	return s.ops, s.opsErr
}

func (s *stubProviders) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.tasks, s.tasksErr
}

func (s *stubProviders) ListWikis(ctx context.Context) ([]model.Wiki, error) {
	return s.wikis, s.wikisErr
}

func (s *stubProviders) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.events, s.eventsErr
}

func (s *stubProviders) bundle() Providers {
	return Providers{Operations: s, Tasks: s, Wikis: s, Events: s}
}

func fixtureProviders() *stubProviders {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &stubProviders{
		ops: []model.Operation{
			{ID: "op1", Name: "Rescue Alpha", Description: "flood response", Region: "north", Status: model.OperationActive},
			{ID: "op2", Name: "Supply Bravo", Description: "convoy staging", Region: "south", Status: model.OperationStandby},
		},
		tasks: []model.Task{
			{ID: "t1", OperationName: "Rescue Alpha", Title: "Check water points", Priority: model.PriorityHigh, Status: model.TaskOpen, Region: "north", DueAt: &due},
			{ID: "t2", OperationName: "Supply Bravo", Title: "Refuel trucks", Priority: model.PriorityLow, Status: model.TaskDone, Region: "south"},
		},
		wikis: []model.Wiki{
			{ID: "w1", OperationName: "Rescue Alpha", Title: "Water point map", Content: "grid references for all water points"},
		},
		events: []model.Event{
			{ID: "e1", OperationName: "Rescue Alpha", Title: "Water team briefing", Region: "north"},
		},
	}
}

func newTestOrchestrator(p Providers) *Orchestrator {
	return NewOrchestrator(p, 5, time.Millisecond, nil)
}

func sectionTypes(r Results) []model.EntityType {
	var types []model.EntityType
	for _, s := range r.Sections {
		types = append(types, s.Type)
	}
	return types
}

func TestExecuteBlankInputIsInitial(t *testing.T) {
	o := newTestOrchestrator(fixtureProviders().bundle())

	res := o.Execute(context.Background(), "   ")
	assert.True(t, res.Initial)
	assert.Empty(t, res.Sections)
}

func TestExecuteMatchesAcrossCategoriesInFixedOrder(t *testing.T) {
	o := newTestOrchestrator(fixtureProviders().bundle())

	res := o.Execute(context.Background(), "water")
	require.False(t, res.Initial)
	assert.Equal(t,
		[]model.EntityType{model.EntityTask, model.EntityWiki, model.EntityEvent},
		sectionTypes(res))
}

func TestExecuteTypeFilterLimitsCategories(t *testing.T) {
	o := newTestOrchestrator(fixtureProviders().bundle())

	res := o.Execute(context.Background(), "wiki: water")
	require.Len(t, res.Sections, 1)
	assert.Equal(t, model.EntityWiki, res.Sections[0].Type)
	assert.Equal(t, "w1", res.Sections[0].Items[0].ID)
}

func TestExecutePriorityFilterExcludesNonTasks(t *testing.T) {
	o := newTestOrchestrator(fixtureProviders().bundle())

	res := o.Execute(context.Background(), "priority:high")
	require.Len(t, res.Sections, 1)
	assert.Equal(t, model.EntityTask, res.Sections[0].Type)
	require.Len(t, res.Sections[0].Items, 1)
	assert.Equal(t, "t1", res.Sections[0].Items[0].ID)
}

func TestExecuteOperationFilterSpansCategories(t *testing.T) {
	o := newTestOrchestrator(fixtureProviders().bundle())

	res := o.Execute(context.Background(), "operation:Rescue Alpha")
	assert.Equal(t,
		[]model.EntityType{model.EntityOperation, model.EntityTask, model.EntityWiki, model.EntityEvent},
		sectionTypes(res))
	assert.Equal(t, "op1", res.Sections[0].Items[0].ID)
}

func TestExecuteRegionFilterSkipsWikis(t *testing.T) {
	o := newTestOrchestrator(fixtureProviders().bundle())

	res := o.Execute(context.Background(), "region:north water")
	assert.Equal(t,
		[]model.EntityType{model.EntityTask, model.EntityEvent},
		sectionTypes(res))
}

func TestExecuteNoHitsKeepsQuery(t *testing.T) {
	o := newTestOrchestrator(fixtureProviders().bundle())

	res := o.Execute(context.Background(), "zzzzzz")
	assert.True(t, res.Empty())
	assert.Equal(t, "zzzzzz", res.Query)
}

func TestExecuteProviderFailureDegradesThatCategoryOnly(t *testing.T) {
	p := fixtureProviders()
	p.eventsErr = errors.New("db locked")
	o := newTestOrchestrator(p.bundle())

	res := o.Execute(context.Background(), "water")
	assert.Equal(t,
		[]model.EntityType{model.EntityTask, model.EntityWiki},
		sectionTypes(res))
}

func TestExecuteCapsEachSection(t *testing.T) {
	p := &stubProviders{}
	for i := 0; i < 12; i++ {
		p.tasks = append(p.tasks, model.Task{
			ID:    fmt.Sprintf("t%d", i),
			Title: fmt.Sprintf("pump check %d", i),
		})
	}
	o := NewOrchestrator(Providers{Tasks: p}, 5, time.Millisecond, nil)

	res := o.Execute(context.Background(), "pump")
	require.Len(t, res.Sections, 1)
	assert.Len(t, res.Sections[0].Items, 5)
}

func TestExecuteDueFilters(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	at := func(ts time.Time) *time.Time { return &ts }

	p := &stubProviders{tasks: []model.Task{
		{ID: "today", Title: "a", DueAt: at(now.Add(3 * time.Hour)), Status: model.TaskOpen},
		{ID: "tomorrow", Title: "b", DueAt: at(now.Add(26 * time.Hour)), Status: model.TaskOpen},
		{ID: "week", Title: "c", DueAt: at(now.Add(5 * 24 * time.Hour)), Status: model.TaskOpen},
		{ID: "late", Title: "d", DueAt: at(now.Add(-48 * time.Hour)), Status: model.TaskOpen},
		{ID: "latedone", Title: "e", DueAt: at(now.Add(-48 * time.Hour)), Status: model.TaskDone},
		{ID: "undated", Title: "f"},
	}}
	o := NewOrchestrator(Providers{Tasks: p}, 10, time.Millisecond, nil)
	o.now = func() time.Time { return now }

	ids := func(raw string) []string {
		var out []string
		for _, it := range o.Execute(context.Background(), raw).Flatten() {
			out = append(out, it.ID)
		}
		return out
	}

	assert.Equal(t, []string{"today"}, ids("due:today"))
	assert.Equal(t, []string{"tomorrow"}, ids("due:tomorrow"))
	assert.Equal(t, []string{"today", "tomorrow", "week"}, ids("due:week"))
	assert.Equal(t, []string{"late"}, ids("due:overdue"))
}

func TestExecuteDueTomorrowAcrossShortDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tz database unavailable")
	}

	// Clocks spring forward on 2026-03-08, so that day is 23 hours long.
	// Late on the 7th, "tomorrow" must still mean the 8th, not the 9th.
	now := time.Date(2026, 3, 7, 23, 30, 0, 0, loc)
	due := time.Date(2026, 3, 8, 22, 0, 0, 0, loc)

	p := &stubProviders{tasks: []model.Task{
		{ID: "t1", Title: "Rotate generator crews", DueAt: &due, Status: model.TaskOpen},
	}}
	o := NewOrchestrator(Providers{Tasks: p}, 5, time.Millisecond, nil)
	o.now = func() time.Time { return now }

	res := o.Execute(context.Background(), "due:tomorrow")
	require.Len(t, res.Flatten(), 1)
	assert.Equal(t, "t1", res.Flatten()[0].ID)
}

func TestExecuteActivationOpensEntity(t *testing.T) {
	var gotType model.EntityType
	var gotID string
	o := NewOrchestrator(fixtureProviders().bundle(), 5, time.Millisecond,
		func(t model.EntityType, id string) {
			gotType, gotID = t, id
		})

	res := o.Execute(context.Background(), "wiki: water")
	require.Len(t, res.Sections, 1)
	res.Sections[0].Items[0].Activate()

	assert.Equal(t, model.EntityWiki, gotType)
	assert.Equal(t, "w1", gotID)
}

func TestSubmitPublishesNewestResult(t *testing.T) {
	o := NewOrchestrator(fixtureProviders().bundle(), 5, 50*time.Millisecond, nil)
	defer o.Close()

	o.Submit("refuel")
	// A later submission within the quiet period supersedes the first.
	o.Submit("water")

	select {
	case res := <-o.Results():
		assert.Equal(t, "water", res.Query)
	case <-time.After(time.Second):
		t.Fatal("no result published")
	}
}

func TestPublishReplacesUnconsumedResult(t *testing.T) {
	o := newTestOrchestrator(Providers{})

	o.publish(Results{Query: "first"})
	o.publish(Results{Query: "second"})

	res := <-o.Results()
	assert.Equal(t, "second", res.Query)
}
