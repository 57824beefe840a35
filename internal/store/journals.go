package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// SaveJournal inserts or updates a journal entry. A missing id is generated
// and a zero day defaults to today.
func (s *Store) SaveJournal(ctx context.Context, j *model.Journal) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if j.Day.IsZero() {
		j.Day = now
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journals (id, day, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			day = excluded.day,
			title = excluded.title,
			body = excluded.body,
			updated_at = excluded.updated_at
	`, j.ID, j.Day, j.Title, j.Body, j.CreatedAt, j.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving journal entry: %w", err)
	}
	return nil
}

// GetJournal retrieves a journal entry by id.
func (s *Store) GetJournal(ctx context.Context, id string) (*model.Journal, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, day, title, body, created_at, updated_at
		FROM journals WHERE id = ?
	`, id)

	j, err := scanJournal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	return j, nil
}

// DeleteJournal removes a journal entry.
func (s *Store) DeleteJournal(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM journals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	return nil
}

// ListJournals returns all journal entries, newest day first.
func (s *Store) ListJournals(ctx context.Context) ([]model.Journal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, title, body, created_at, updated_at
		FROM journals ORDER BY day DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Journal
	for rows.Next() {
		j, err := scanJournal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}

func scanJournal(scan func(...any) error) (*model.Journal, error) {
	var j model.Journal
	var day, createdAt, updatedAt sql.NullTime
	if err := scan(&j.ID, &day, &j.Title, &j.Body, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if day.Valid {
		j.Day = day.Time
	}
	if createdAt.Valid {
		j.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		j.UpdatedAt = updatedAt.Time
	}
	return &j, nil
}
