package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/altinukshini/fieldops-tui/internal/logger"
	"github.com/altinukshini/fieldops-tui/internal/model"
)

// Document is the denormalized, searchable form of an entity. The document
// store owns these; readers only ever see snapshots.
type Document struct {
	ID        string
	Type      model.EntityType
	Title     string
	Body      string
	UpdatedAt time.Time
	Fields    map[string]string
}

// DocStore is an in-memory document collection with copy-on-write updates:
// readers take an immutable snapshot, writers swap in a fresh slice under the
// lock, so a rebuild can run alongside queries without torn reads.
type DocStore struct {
	mu   sync.RWMutex
	docs []Document
}

func NewDocStore() *DocStore {
	return &DocStore{}
}

func (s *DocStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Snapshot returns the current document list. Callers must not mutate it.
func (s *DocStore) Snapshot() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs
}

func (s *DocStore) Clear() {
	s.mu.Lock()
	s.docs = nil
	s.mu.Unlock()
}

// Upsert inserts doc or replaces the existing document with the same id and
// type.
func (s *DocStore) Upsert(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Document, 0, len(s.docs)+1)
	replaced := false
	for _, d := range s.docs {
		if d.ID == doc.ID && d.Type == doc.Type {
			next = append(next, doc)
			replaced = true
			continue
		}
		next = append(next, d)
	}
	if !replaced {
		next = append(next, doc)
	}
	s.docs = next
}

func (s *DocStore) replace(docs []Document) {
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
}

// Lookup returns documents whose title or body fuzzily matches needle, in
// store order, capped at limit (0 = unlimited). An empty type matches all
// types.
func (s *DocStore) Lookup(t model.EntityType, needle string, limit int) []Document {
	var hits []Document
	for _, d := range s.Snapshot() {
		if t != "" && d.Type != t {
			continue
		}
		if !MatchesAny(needle, d.Title, d.Body) {
			continue
		}
		hits = append(hits, d)
		if limit > 0 && len(hits) >= limit {
			break
		}
	}
	return hits
}

// Maintainer populates the document store from the entity providers. Bulk
// rebuild is idempotent and the only way documents leave the store in bulk;
// incremental upserts track individual entity saves.
type Maintainer struct {
	store     *DocStore
	providers Providers
}

func NewMaintainer(store *DocStore, providers Providers) *Maintainer {
	return &Maintainer{store: store, providers: providers}
}

func (m *Maintainer) Store() *DocStore {
	return m.store
}

// RebuildAll clears the store and re-indexes every provider's full listing,
// returning the total number of documents indexed. A failing provider is
// skipped; a stale index is user-correctable by rebuilding again, not an
// error state.
func (m *Maintainer) RebuildAll(ctx context.Context) (int, error) {
	m.store.Clear()
	var docs []Document

	if p := m.providers.Operations; p != nil {
		ops, err := p.ListOperations(ctx)
		if err != nil {
			logger.Warn("index: operations listing failed: %v", err)
		}
		for _, op := range ops {
			docs = append(docs, DocumentForOperation(op))
		}
	}
	if p := m.providers.Tasks; p != nil {
		tasks, err := p.ListTasks(ctx)
		if err != nil {
			logger.Warn("index: tasks listing failed: %v", err)
		}
		for _, t := range tasks {
			docs = append(docs, DocumentForTask(t))
		}
	}
	if p := m.providers.Wikis; p != nil {
		wikis, err := p.ListWikis(ctx)
		if err != nil {
			logger.Warn("index: wikis listing failed: %v", err)
		}
		for _, w := range wikis {
			docs = append(docs, DocumentForWiki(w))
		}
	}
	if p := m.providers.Events; p != nil {
		events, err := p.ListEvents(ctx)
		if err != nil {
			logger.Warn("index: events listing failed: %v", err)
		}
		for _, e := range events {
			docs = append(docs, DocumentForEvent(e))
		}
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.store.replace(docs)
	logger.Info("index: rebuilt %d documents", len(docs))
	return len(docs), nil
}

// IndexDocument upserts a single document, used on entity save.
func (m *Maintainer) IndexDocument(doc Document) {
	m.store.Upsert(doc)
}

func DocumentForOperation(op model.Operation) Document {
	return Document{
		ID:        op.ID,
		Type:      model.EntityOperation,
		Title:     op.Name,
		Body:      op.Description,
		UpdatedAt: op.UpdatedAt,
		Fields: map[string]string{
			"region": op.Region,
			"status": string(op.Status),
		},
	}
}

func DocumentForTask(t model.Task) Document {
	return Document{
		ID:        t.ID,
		Type:      model.EntityTask,
		Title:     t.Title,
		Body:      t.Description,
		UpdatedAt: t.UpdatedAt,
		Fields: map[string]string{
			"operation": t.OperationName,
			"priority":  string(t.Priority),
			"status":    string(t.Status),
			"region":    t.Region,
		},
	}
}

func DocumentForWiki(w model.Wiki) Document {
	return Document{
		ID:        w.ID,
		Type:      model.EntityWiki,
		Title:     w.Title,
		Body:      w.Content,
		UpdatedAt: w.UpdatedAt,
		Fields: map[string]string{
			"operation": w.OperationName,
			"tags":      strings.Join(w.Tags, ","),
		},
	}
}

func DocumentForEvent(e model.Event) Document {
	return Document{
		ID:        e.ID,
		Type:      model.EntityEvent,
		Title:     e.Title,
		Body:      e.Description,
		UpdatedAt: e.UpdatedAt,
		Fields: map[string]string{
			"operation": e.OperationName,
			"location":  e.Location,
			"region":    e.Region,
		},
	}
}
