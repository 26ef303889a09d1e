package folders

import (
	"context"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Folder, error)
}
