package model

import "time"

// Journal is a dated log entry. Journals are browsed chronologically and are
// not part of the unified search index.
type Journal struct {
	ID        string
	Day       time.Time
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
