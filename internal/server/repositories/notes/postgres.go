package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cloudkeeper/internal/common"
	"github.com/dmitrijs2005/cloudkeeper/internal/dbx"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX.
// Tags are kept as a jsonb array.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	tags, err := marshalTags(note.Tags)
	if err != nil {
		return nil, fmt.Errorf("tags encode error: %w", err)
	}

	query := `
		INSERT INTO notes (id, user_id, title, content, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		note.ID, note.UserID, note.Title, note.Content, tags).
		Scan(&note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

// ListByUser returns the user's notes, most recently updated first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT id, user_id, title, content, tags, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		item, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Note, error) {
	query := `
		SELECT id, user_id, title, content, tags, created_at, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2
	`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return note, nil
}

// Update persists title/content/tags and bumps updated_at. The owner id is
// part of the predicate; zero rows affected maps to not-found.
func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) error {
	tags, err := marshalTags(note.Tags)
	if err != nil {
		return fmt.Errorf("tags encode error: %w", err)
	}

	query := `
		UPDATE notes
		SET title = $3, content = $4, tags = $5, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, note.ID, note.UserID, note.Title, note.Content, tags)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanNote(scan func(dest ...any) error) (*models.Note, error) {
	note := &models.Note{}
	var tags []byte
	if err := scan(&note.ID, &note.UserID, &note.Title, &note.Content, &tags,
		&note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &note.Tags); err != nil {
		return nil, fmt.Errorf("tags decode error: %w", err)
	}
	return note, nil
}
