package model

// EntityType identifies which domain a searchable record belongs to.
type EntityType string

const (
	EntityOperation EntityType = "operation"
	EntityTask      EntityType = "task"
	EntityWiki      EntityType = "wiki"
	EntityEvent     EntityType = "event"
)

// SearchableTypes lists entity types in the fixed section display order.
var SearchableTypes = []EntityType{EntityOperation, EntityTask, EntityWiki, EntityEvent}

func (t EntityType) Label() string {
	switch t {
	case EntityOperation:
		return "Operations"
	case EntityTask:
		return "Tasks"
	case EntityWiki:
		return "Wikis"
	case EntityEvent:
		return "Events"
	}
	return string(t)
}
