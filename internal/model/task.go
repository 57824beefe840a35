package model

import "time"

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type Task struct {
	ID            string
	OperationID   string
	OperationName string
	Title         string
	Description   string
	Priority      TaskPriority
	Status        TaskStatus
	Region        string
	DueAt         *time.Time // nil = no due date
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overdue reports whether the task is past its due date and not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && t.Status != TaskDone
}

// DueOn reports whether the task is due on the given calendar day.
func (t Task) DueOn(day time.Time) bool {
	if t.DueAt == nil {
		return false
	}
	y1, m1, d1 := t.DueAt.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NextStatus cycles open -> in_progress -> done -> open.
func (t Task) NextStatus() TaskStatus {
	switch t.Status {
	case TaskOpen:
		return TaskInProgress
	case TaskInProgress:
		return TaskDone
	default:
		return TaskOpen
	}
}
