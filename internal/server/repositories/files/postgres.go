package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cloudkeeper/internal/common"
	"github.com/dmitrijs2005/cloudkeeper/internal/dbx"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	query := `
		INSERT INTO files (id, user_id, file_name, file_size, content_type, storage_key, folder_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		file.ID, file.UserID, file.FileName, file.FileSize, file.ContentType, file.StorageKey, file.FolderID).
		Scan(&file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// ListByUser returns the user's files, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.File, error) {
	query := `
		SELECT id, user_id, file_name, file_size, content_type, storage_key,
		       COALESCE(folder_id::text, ''), created_at, updated_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		var item models.File
		if err := rows.Scan(&item.ID, &item.UserID, &item.FileName, &item.FileSize,
			&item.ContentType, &item.StorageKey, &item.FolderID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID reads one file by (id, owner). Foreign ownership scans as no rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.File, error) {
	query := `
		SELECT id, user_id, file_name, file_size, content_type, storage_key,
		       COALESCE(folder_id::text, ''), created_at, updated_at
		FROM files
		WHERE id = $1 AND user_id = $2
	`
	file := &models.File{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&file.ID, &file.UserID, &file.FileName, &file.FileSize,
			&file.ContentType, &file.StorageKey, &file.FolderID, &file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// Delete removes one file by (id, owner). Zero rows affected means the file
// is absent or belongs to someone else.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM files WHERE id = $1 AND user_id = $2`
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
