package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

func TestParseFiltersTypeAndTaskTags(t *testing.T) {
	f := ParseFilters("task: priority:high due:today standup")

	assert.Equal(t, model.EntityTask, f.Type)
	assert.Equal(t, model.PriorityHigh, f.Priority)
	assert.Equal(t, DueToday, f.Due)
	assert.Empty(t, f.Operation)
	assert.Empty(t, f.Region)
	assert.Equal(t, "standup", f.CleanQuery)
}

func TestParseFiltersOperationAndRegion(t *testing.T) {
	f := ParseFilters("operation:Rescue Alpha region:north water points")

	assert.Equal(t, "Rescue Alpha", f.Operation)
	assert.Equal(t, "north", f.Region)
	assert.Empty(t, f.Type)
	assert.Equal(t, "water points", f.CleanQuery)
}

func TestParseFiltersTypePrefixOnlyAtStart(t *testing.T) {
	f := ParseFilters("find wiki: notes")
	assert.Empty(t, f.Type)
	assert.Equal(t, "find wiki: notes", f.CleanQuery)
}

func TestParseFiltersCaseInsensitive(t *testing.T) {
	f := ParseFilters("WIKI: Priority:HIGH checklist")
	assert.Equal(t, model.EntityWiki, f.Type)
	assert.Equal(t, model.PriorityHigh, f.Priority)
	assert.Equal(t, "checklist", f.CleanQuery)
}

func TestParseFiltersOperationTypePrefixNeedsBareTag(t *testing.T) {
	// A bare "operation:" prefix filters by type; an attached value names an
	// operation instead.
	byType := ParseFilters("operation: bravo")
	assert.Equal(t, model.EntityOperation, byType.Type)
	assert.Empty(t, byType.Operation)
	assert.Equal(t, "bravo", byType.CleanQuery)

	byName := ParseFilters("operation:Bravo")
	assert.Empty(t, byName.Type)
	assert.Equal(t, "Bravo", byName.Operation)
	assert.Empty(t, byName.CleanQuery)
}

func TestParseFiltersPureFilterNoFreeText(t *testing.T) {
	f := ParseFilters("due:overdue")
	assert.Equal(t, DueOverdue, f.Due)
	assert.Empty(t, f.CleanQuery)
	assert.True(t, f.HasFilter())
}

func TestParseFiltersMalformedTagStaysInQuery(t *testing.T) {
	f := ParseFilters("priority:urgent fix pump")
	assert.Empty(t, f.Priority)
	assert.Equal(t, "priority:urgent fix pump", f.CleanQuery)
	assert.False(t, f.HasFilter())
}

func TestParseFiltersWhitespaceOnly(t *testing.T) {
	f := ParseFilters("   ")
	assert.Empty(t, f.CleanQuery)
	assert.False(t, f.HasFilter())
}
