package model

import "time"

type Event struct {
	ID            string
	OperationID   string
	OperationName string
	Title         string
	Description   string
	Location      string
	Region        string
	StartsAt      time.Time
	EndsAt        time.Time
	AllDay        bool
	UpdatedAt     time.Time
}

// OnDay reports whether the event touches the given calendar day.
func (e Event) OnDay(day time.Time) bool {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	evEnd := e.EndsAt
	if evEnd.IsZero() {
		evEnd = e.StartsAt
	}
	return e.StartsAt.Before(end) && !evEnd.Before(start)
}

func (e Event) Duration() time.Duration {
	if e.EndsAt.IsZero() || e.StartsAt.IsZero() {
		return 0
	}
	return e.EndsAt.Sub(e.StartsAt)
}
