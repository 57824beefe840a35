package model

import "time"

type OperationStatus string

const (
	OperationActive  OperationStatus = "active"
	OperationStandby OperationStatus = "standby"
	OperationClosed  OperationStatus = "closed"
)

// Operation is a long-running mission that tasks, events and wikis hang off.
type Operation struct {
	ID          string
	Name        string
	Description string
	Region      string
	Status      OperationStatus
	StartedAt   time.Time
	UpdatedAt   time.Time
}

func (o Operation) Age() time.Duration {
	if o.StartedAt.IsZero() {
		return 0
	}
	return time.Since(o.StartedAt)
}
