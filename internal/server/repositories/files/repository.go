package files

import (
	"context"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
)

// Repository stores file metadata. Every read or delete of a single row
// takes the owner id alongside the file id; a row owned by another user is
// indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	ListByUser(ctx context.Context, userID string) ([]*models.File, error)
	GetByID(ctx context.Context, id, userID string) (*models.File, error)
	Delete(ctx context.Context, id, userID string) error
}
