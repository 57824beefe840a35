package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// SaveEvent inserts or updates a calendar event. A missing id is generated.
func (s *Store) SaveEvent(ctx context.Context, e *model.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.UpdatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, operation_id, title, description, location, region, starts_at, ends_at, all_day, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			operation_id = excluded.operation_id,
			title = excluded.title,
			description = excluded.description,
			location = excluded.location,
			region = excluded.region,
			starts_at = excluded.starts_at,
			ends_at = excluded.ends_at,
			all_day = excluded.all_day,
			updated_at = excluded.updated_at
	`, e.ID, e.OperationID, e.Title, e.Description, e.Location, e.Region,
		e.StartsAt, e.EndsAt, e.AllDay, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by id with its parent operation's name resolved.
func (s *Store) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	row := s.db.QueryRowContext(ctx, eventSelect+" WHERE e.id = ?", id)

	e, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning event: %w", err)
	}
	return e, nil
}

// DeleteEvent removes an event.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// ListEvents returns all events in chronological order.
func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := s.db.QueryContext(ctx, eventSelect+" ORDER BY e.starts_at")
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

const eventSelect = `
	SELECT e.id, e.operation_id, COALESCE(o.name, ''), e.title, e.description,
		e.location, e.region, e.starts_at, e.ends_at, e.all_day, e.updated_at
	FROM events e LEFT JOIN operations o ON o.id = e.operation_id`

func scanEvent(scan func(...any) error) (*model.Event, error) {
	var e model.Event
	var startsAt, endsAt, updatedAt sql.NullTime
	if err := scan(&e.ID, &e.OperationID, &e.OperationName, &e.Title, &e.Description,
		&e.Location, &e.Region, &startsAt, &endsAt, &e.AllDay, &updatedAt); err != nil {
		return nil, err
	}
	if startsAt.Valid {
		e.StartsAt = startsAt.Time
	}
	if endsAt.Valid {
		e.EndsAt = endsAt.Time
	}
	if updatedAt.Valid {
		e.UpdatedAt = updatedAt.Time
	}
	return &e, nil
}
