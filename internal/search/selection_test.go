package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

func threeItemResults() Results {
	return Results{
		Query: "pump",
		Sections: []Section{
			{Type: model.EntityOperation, Items: []Item{
				{Type: model.EntityOperation, ID: "op1"},
			}},
			{Type: model.EntityTask, Items: []Item{
				{Type: model.EntityTask, ID: "t1"},
				{Type: model.EntityTask, ID: "t2"},
			}},
		},
	}
}

func TestSelectionStartsUnselected(t *testing.T) {
	s := NewSelection(nil)
	s.SetResults(threeItemResults())

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, -1, s.Index())
	assert.Nil(t, s.Selected())
}

func TestSelectionNavigateWrapsBothWays(t *testing.T) {
	s := NewSelection(nil)
	s.SetResults(threeItemResults())

	// Entering the list from unselected: down lands on the first item, up on
	// the last.
	s.Navigate(1)
	assert.Equal(t, 0, s.Index())

	s.Navigate(-1)
	assert.Equal(t, 2, s.Index())

	s.Navigate(1)
	assert.Equal(t, 0, s.Index())
}

func TestSelectionNavigateUpFromUnselected(t *testing.T) {
	s := NewSelection(nil)
	s.SetResults(threeItemResults())

	s.Navigate(-1)
	assert.Equal(t, 2, s.Index())
}

func TestSelectionNavigateEmptyListIsNoop(t *testing.T) {
	s := NewSelection(nil)
	s.SetResults(Results{Query: "nothing"})

	s.Navigate(1)
	assert.Equal(t, -1, s.Index())
	assert.Nil(t, s.Selected())
}

func TestSelectionSetResultsClearsSelection(t *testing.T) {
	s := NewSelection(nil)
	s.SetResults(threeItemResults())
	s.Navigate(1)
	assert.Equal(t, 0, s.Index())

	s.SetResults(threeItemResults())
	assert.Equal(t, -1, s.Index())
}

func TestSelectionFlattensAcrossSections(t *testing.T) {
	s := NewSelection(nil)
	s.SetResults(threeItemResults())

	s.Navigate(1) // op1
	assert.Equal(t, "op1", s.Selected().ID)
	s.Navigate(1) // t1, crossing the section boundary
	assert.Equal(t, "t1", s.Selected().ID)
	assert.Equal(t, model.EntityTask, s.Selected().Type)
}

func TestActivateSelectedInvokesCallback(t *testing.T) {
	activated := ""
	r := Results{Query: "q", Sections: []Section{
		{Type: model.EntityWiki, Items: []Item{
			{Type: model.EntityWiki, ID: "w1", Activate: func() { activated = "w1" }},
		}},
	}}

	s := NewSelection(nil)
	s.SetResults(r)
	s.Navigate(1)
	s.ActivateSelected()

	assert.Equal(t, "w1", activated)
}

func TestActivateSelectedRecordsQueryBeforeCallback(t *testing.T) {
	recents := NewRecentStore(newFakeKV(), 5)
	var atActivation []string
	r := Results{Query: "pump repair", Sections: []Section{
		{Type: model.EntityTask, Items: []Item{
			{Type: model.EntityTask, ID: "t1", Activate: func() {
				atActivation = recents.List()
			}},
		}},
	}}

	s := NewSelection(recents)
	s.SetResults(r)
	s.Navigate(1)
	s.ActivateSelected()

	// Opening a hit also saves the query, and the save lands first so the
	// recent list is current by the time the jump happens.
	assert.Equal(t, []string{"pump repair"}, atActivation)
	assert.Equal(t, []string{"pump repair"}, recents.List())
}

func TestActivateWithoutSelectionRecordsQuery(t *testing.T) {
	recents := NewRecentStore(newFakeKV(), 5)
	s := NewSelection(recents)
	s.SetResults(Results{Query: "  pump repair  "})

	s.ActivateSelected()

	assert.Equal(t, []string{"pump repair"}, recents.List())
}

func TestActivateWithoutSelectionIgnoresBlankQuery(t *testing.T) {
	recents := NewRecentStore(newFakeKV(), 5)
	s := NewSelection(recents)
	s.SetResults(Results{Query: "   "})

	s.ActivateSelected()

	assert.Empty(t, recents.List())
}

func TestResultsEmpty(t *testing.T) {
	assert.True(t, Results{Query: "q"}.Empty())
	assert.False(t, Results{Initial: true}.Empty())
	assert.False(t, threeItemResults().Empty())
}
