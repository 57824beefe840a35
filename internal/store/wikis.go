package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// SaveWiki inserts or updates a wiki page. A missing id is generated. Tags
// are stored as a JSON array.
func (s *Store) SaveWiki(ctx context.Context, w *model.Wiki) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.UpdatedAt = time.Now().UTC()

	tagsJSON, err := json.Marshal(w.Tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wikis (id, operation_name, title, content, tags, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			operation_name = excluded.operation_name,
			title = excluded.title,
			content = excluded.content,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`, w.ID, w.OperationName, w.Title, w.Content, string(tagsJSON), w.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving wiki: %w", err)
	}
	return nil
}

// GetWiki retrieves a wiki page by id.
func (s *Store) GetWiki(ctx context.Context, id string) (*model.Wiki, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, operation_name, title, content, tags, updated_at
		FROM wikis WHERE id = ?
	`, id)

	w, err := scanWiki(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning wiki: %w", err)
	}
	return w, nil
}

// DeleteWiki removes a wiki page.
func (s *Store) DeleteWiki(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM wikis WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting wiki: %w", err)
	}
	return nil
}

// ListWikis returns all wiki pages ordered by title.
func (s *Store) ListWikis(ctx context.Context) ([]model.Wiki, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, operation_name, title, content, tags, updated_at
		FROM wikis ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("querying wikis: %w", err)
	}
	defer rows.Close()

	var wikis []model.Wiki
	for rows.Next() {
		w, err := scanWiki(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning wiki: %w", err)
		}
		wikis = append(wikis, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wikis: %w", err)
	}
	return wikis, nil
}

func scanWiki(scan func(...any) error) (*model.Wiki, error) {
	var w model.Wiki
	var tagsJSON string
	var updatedAt sql.NullTime
	if err := scan(&w.ID, &w.OperationName, &w.Title, &w.Content, &tagsJSON, &updatedAt); err != nil {
		return nil, err
	}
	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &w.Tags); err != nil {
			return nil, fmt.Errorf("unmarshaling tags: %w", err)
		}
	}
	if updatedAt.Valid {
		w.UpdatedAt = updatedAt.Time
	}
	return &w, nil
}
