package search

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/altinukshini/fieldops-tui/internal/logger"
)

// KV is the flat key-value persistence collaborator backing the recent-search
// list. The store serializes its whole list into a single value.
type KV interface {
	Get(key string) (string, error) // "" when the key is absent
	Put(key, value string) error
}

const recentKey = "recent_searches"

// RecentStore keeps a bounded, de-duplicated, most-recent-first list of past
// queries. It holds no cache of its own; every call round-trips through the
// persistence collaborator. History is best-effort: a failed read behaves
// like an empty list and a failed write is dropped, so search keeps working
// without it.
type RecentStore struct {
	mu    sync.Mutex
	kv    KV
	limit int
}

func NewRecentStore(kv KV, limit int) *RecentStore {
	if limit <= 0 {
		limit = 5
	}
	return &RecentStore{kv: kv, limit: limit}
}

// List returns past queries, most recent first.
func (s *RecentStore) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Record puts text at the front of the list, moving it there if it is already
// present, and evicts the oldest entry past the limit. Empty text is ignored.
func (s *RecentStore) Record(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []string{text}
	for _, e := range s.load() {
		if e != text {
			entries = append(entries, e)
		}
	}
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.save(entries)
}

// Remove deletes text from the list if present.
func (s *RecentStore) Remove(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	kept := entries[:0]
	for _, e := range entries {
		if e != text {
			kept = append(kept, e)
		}
	}
	if len(kept) != len(entries) {
		s.save(kept)
	}
}

// load and save use a JSON array as the persisted encoding, so entries may
// contain any characters without a delimiter collision.
func (s *RecentStore) load() []string {
	raw, err := s.kv.Get(recentKey)
	if err != nil {
		logger.Warn("recent searches: read failed: %v", err)
		return nil
	}
	if raw == "" {
		return nil
	}
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Warn("recent searches: corrupt value, starting fresh: %v", err)
		return nil
	}
	return entries
}

func (s *RecentStore) save(entries []string) {
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.kv.Put(recentKey, string(data)); err != nil {
		logger.Warn("recent searches: write failed: %v", err)
	}
}
