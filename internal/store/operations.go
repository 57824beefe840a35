package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// SaveOperation inserts or updates an operation. A missing id is generated.
func (s *Store) SaveOperation(ctx context.Context, op *model.Operation) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if op.StartedAt.IsZero() {
		op.StartedAt = now
	}
	op.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO operations (id, name, description, region, status, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			region = excluded.region,
			status = excluded.status,
			updated_at = excluded.updated_at
	`, op.ID, op.Name, op.Description, op.Region, string(op.Status), op.StartedAt, op.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving operation: %w", err)
	}
	return nil
}

// GetOperation retrieves an operation by id.
func (s *Store) GetOperation(ctx context.Context, id string) (*model.Operation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, region, status, started_at, updated_at
		FROM operations WHERE id = ?
	`, id)

	op, err := scanOperation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning operation: %w", err)
	}
	return op, nil
}

// DeleteOperation removes an operation.
func (s *Store) DeleteOperation(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM operations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting operation: %w", err)
	}
	return nil
}

// ListOperations returns all operations ordered by name.
func (s *Store) ListOperations(ctx context.Context) ([]model.Operation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, region, status, started_at, updated_at
		FROM operations ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying operations: %w", err)
	}
	defer rows.Close()

	var ops []model.Operation
	for rows.Next() {
		op, err := scanOperation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operations: %w", err)
	}
	return ops, nil
}

func scanOperation(scan func(...any) error) (*model.Operation, error) {
	var op model.Operation
	var status string
	var startedAt, updatedAt sql.NullTime
	if err := scan(&op.ID, &op.Name, &op.Description, &op.Region, &status,
		&startedAt, &updatedAt); err != nil {
		return nil, err
	}
	op.Status = model.OperationStatus(status)
	if startedAt.Valid {
		op.StartedAt = startedAt.Time
	}
	if updatedAt.Valid {
		op.UpdatedAt = updatedAt.Time
	}
	return &op, nil
}
