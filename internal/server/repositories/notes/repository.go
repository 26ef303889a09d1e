package notes

import (
	"context"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
)

// Repository stores notes. Single-row operations are keyed by
// (id, owner id); cross-tenant access is impossible at the query layer.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Note, error)
	GetByID(ctx context.Context, id, userID string) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id, userID string) error
}
