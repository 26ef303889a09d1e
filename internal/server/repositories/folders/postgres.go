package folders

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cloudkeeper/internal/dbx"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
)

// PostgresRepository implements folder storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, user_id, name, parent_folder_id)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		folder.ID, folder.UserID, folder.Name, folder.ParentFolderID).
		Scan(&folder.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return folder, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	query := `
		SELECT id, user_id, name, COALESCE(parent_folder_id::text, ''), created_at
		FROM folders
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Folder
	for rows.Next() {
		var item models.Folder
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.ParentFolderID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
