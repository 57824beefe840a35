package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

func TestRebuildAllIndexesEveryCategory(t *testing.T) {
	m := NewMaintainer(NewDocStore(), fixtureProviders().bundle())

	n, err := m.RebuildAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 6, m.Store().Len())
}

func TestRebuildAllSkipsFailingProvider(t *testing.T) {
	p := fixtureProviders()
	p.wikisErr = errors.New("unreadable")
	p.wikis = nil
	m := NewMaintainer(NewDocStore(), p.bundle())

	n, err := m.RebuildAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRebuildAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMaintainer(NewDocStore(), fixtureProviders().bundle())

	_, err := m.RebuildAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLookupFiltersByTypeAndText(t *testing.T) {
	m := NewMaintainer(NewDocStore(), fixtureProviders().bundle())
	_, err := m.RebuildAll(context.Background())
	require.NoError(t, err)

	hits := m.Store().Lookup(model.EntityWiki, "water", 0)
	require.Len(t, hits, 1)
	assert.Equal(t, "w1", hits[0].ID)

	all := m.Store().Lookup("", "water", 0)
	assert.Len(t, all, 3)

	capped := m.Store().Lookup("", "water", 2)
	assert.Len(t, capped, 2)
}

func TestUpsertReplacesByIDAndType(t *testing.T) {
	s := NewDocStore()
	s.Upsert(Document{ID: "x", Type: model.EntityTask, Title: "old"})
	s.Upsert(Document{ID: "x", Type: model.EntityWiki, Title: "same id, other type"})
	s.Upsert(Document{ID: "x", Type: model.EntityTask, Title: "new"})

	assert.Equal(t, 2, s.Len())
	hits := s.Lookup(model.EntityTask, "new", 0)
	require.Len(t, hits, 1)
	assert.Equal(t, "new", hits[0].Title)
}

func TestSnapshotIsStableAcrossClear(t *testing.T) {
	s := NewDocStore()
	s.Upsert(Document{ID: "a", Type: model.EntityTask, Title: "keep"})

	snap := s.Snapshot()
	s.Clear()

	assert.Zero(t, s.Len())
	require.Len(t, snap, 1)
	assert.Equal(t, "keep", snap[0].Title)
}

func TestDocumentConverters(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	op := DocumentForOperation(model.Operation{
		ID: "op1", Name: "Rescue Alpha", Description: "flood", Region: "north",
		Status: model.OperationActive, UpdatedAt: ts,
	})
	assert.Equal(t, model.EntityOperation, op.Type)
	assert.Equal(t, "Rescue Alpha", op.Title)
	assert.Equal(t, "north", op.Fields["region"])
	assert.Equal(t, ts, op.UpdatedAt)

	w := DocumentForWiki(model.Wiki{
		ID: "w1", Title: "Map", Content: "grid refs", Tags: []string{"geo", "maps"},
	})
	assert.Equal(t, "geo,maps", w.Fields["tags"])
}
