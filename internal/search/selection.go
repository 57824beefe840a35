package search

import (
	"strings"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// Item is a single search hit. Display carries whatever the UI wants to
// render and is opaque to this package; Activate jumps to the entity.
type Item struct {
	Type     model.EntityType
	ID       string
	Display  any
	Activate func()
}

// Section groups the hits of one entity type, capped and in provider order.
type Section struct {
	Type  model.EntityType
	Items []Item
}

// Results is one query execution's outcome. Initial marks the blank-input
// sentinel (the UI shows recent searches instead); a non-initial result with
// no sections means "no results for Query".
type Results struct {
	Query    string
	Sections []Section
	Initial  bool
}

// Empty reports whether an executed query produced no hits.
func (r Results) Empty() bool {
	return !r.Initial && len(r.Sections) == 0
}

// Flatten concatenates all sections' items in display order.
func (r Results) Flatten() []Item {
	var items []Item
	for _, s := range r.Sections {
		items = append(items, s.Items...)
	}
	return items
}

// Selection tracks the single active item across the flat result list and
// drives keyboard navigation over it. Index -1 means nothing is selected.
type Selection struct {
	recents *RecentStore
	items   []Item
	query   string
	index   int
}

func NewSelection(recents *RecentStore) *Selection {
	return &Selection{recents: recents, index: -1}
}

// SetResults replaces the navigable list with a fresh execution's items and
// clears the selection.
func (s *Selection) SetResults(r Results) {
	s.items = r.Flatten()
	s.query = r.Query
	s.index = -1
}

func (s *Selection) Len() int   { return len(s.items) }
func (s *Selection) Index() int { return s.index }

func (s *Selection) Selected() *Item {
	if s.index < 0 || s.index >= len(s.items) {
		return nil
	}
	return &s.items[s.index]
}

// Navigate moves the selection by delta with wraparound. Entering the list
// from the unselected state lands on the first item going down and the last
// item going up. No-op on an empty list.
func (s *Selection) Navigate(delta int) {
	n := len(s.items)
	if n == 0 {
		return
	}
	if s.index < 0 {
		if delta >= 0 {
			s.index = 0
		} else {
			s.index = n - 1
		}
		return
	}
	s.index = ((s.index+delta)%n + n) % n
}

// ActivateSelected records the query as a recent search and then invokes the
// active item's callback. With no selection the recording alone is the
// action: plain enter on typed text means "save this search". Blank queries
// are never recorded.
func (s *Selection) ActivateSelected() {
	if q := strings.TrimSpace(s.query); q != "" && s.recents != nil {
		s.recents.Record(q)
	}
	if it := s.Selected(); it != nil && it.Activate != nil {
		it.Activate()
	}
}
