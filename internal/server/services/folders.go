package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FolderService creates and lists folders. Hierarchy is not enforced.
type FolderService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewFolderService(db *sql.DB, m repomanager.RepositoryManager) *FolderService {
	return &FolderService{db: db, repos: m}
}

func (s *FolderService) Create(ctx context.Context, userID, name, parentFolderID string) (*models.Folder, error) {
	return s.repos.Folders(s.db).Create(ctx, &models.Folder{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           name,
		ParentFolderID: parentFolderID,
	})
}

func (s *FolderService) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	return s.repos.Folders(s.db).ListByUser(ctx, userID)
}
