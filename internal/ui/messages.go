package ui

import (
	"github.com/altinukshini/fieldops-tui/internal/model"
	"github.com/altinukshini/fieldops-tui/internal/search"
)

// Data loaded messages
type OperationsLoadedMsg struct {
	Operations []model.Operation
	Err        error
}

type OperationTasksMsg struct {
	OperationID string
	Tasks       []model.Task
	Err         error
}

type TasksLoadedMsg struct {
	Tasks []model.Task
	Err   error
}

type EventsLoadedMsg struct {
	Events []model.Event
	Err    error
}

type WikisLoadedMsg struct {
	Wikis []model.Wiki
	Err   error
}

type JournalsLoadedMsg struct {
	Entries []model.Journal
	Err     error
}

type WikiLoadedMsg struct {
	Wiki *model.Wiki
	Err  error
}

// SearchResultsMsg carries one search execution's published outcome.
type SearchResultsMsg struct {
	Results search.Results
}

// OpenEntityMsg asks the app to jump to an entity after a search hit is
// activated.
type OpenEntityMsg struct {
	Type model.EntityType
	ID   string
}

type IndexRebuiltMsg struct {
	Count int
	Err   error
}

// Action result messages
type ActionResultMsg struct {
	Action string
	Err    error
}

type StatusMsg struct {
	Text string
}
