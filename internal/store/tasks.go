package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// SaveTask inserts or updates a task. A missing id is generated.
func (s *Store) SaveTask(ctx context.Context, t *model.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	var dueAt any
	if t.DueAt != nil {
		dueAt = *t.DueAt
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, operation_id, title, description, priority, status, region, due_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			operation_id = excluded.operation_id,
			title = excluded.title,
			description = excluded.description,
			priority = excluded.priority,
			status = excluded.status,
			region = excluded.region,
			due_at = excluded.due_at,
			updated_at = excluded.updated_at
	`, t.ID, t.OperationID, t.Title, t.Description, string(t.Priority), string(t.Status),
		t.Region, dueAt, t.CreatedAt, t.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving task: %w", err)
	}
	return nil
}

// GetTask retrieves a task by id with its parent operation's name resolved.
func (s *Store) GetTask(ctx context.Context, id string) (*model.Task, error) {
	row := s.db.QueryRowContext(ctx, taskSelect+" WHERE t.id = ?", id)

	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// ListTasks returns all tasks, undated last, earliest due first.
func (s *Store) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		taskSelect+" ORDER BY t.due_at IS NULL, t.due_at, t.created_at")
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksForOperation returns the tasks attached to one operation.
func (s *Store) ListTasksForOperation(ctx context.Context, operationID string) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		taskSelect+" WHERE t.operation_id = ? ORDER BY t.due_at IS NULL, t.due_at, t.created_at",
		operationID)
	if err != nil {
		return nil, fmt.Errorf("querying operation tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

const taskSelect = `
	SELECT t.id, t.operation_id, COALESCE(o.name, ''), t.title, t.description,
		t.priority, t.status, t.region, t.due_at, t.created_at, t.updated_at
	FROM tasks t LEFT JOIN operations o ON o.id = t.operation_id`

func scanTask(scan func(...any) error) (*model.Task, error) {
	var t model.Task
	var priority, status string
	var dueAt, createdAt, updatedAt sql.NullTime
	if err := scan(&t.ID, &t.OperationID, &t.OperationName, &t.Title, &t.Description,
		&priority, &status, &t.Region, &dueAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.Priority = model.TaskPriority(priority)
	t.Status = model.TaskStatus(status)
	if dueAt.Valid {
		due := dueAt.Time
		t.DueAt = &due
	}
	if createdAt.Valid {
		t.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		t.UpdatedAt = updatedAt.Time
	}
	return &t, nil
}
