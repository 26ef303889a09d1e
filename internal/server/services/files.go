package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path"

	"github.com/dmitrijs2005/cloudkeeper/internal/common"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/blob"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FileService coordinates file metadata rows with blob contents. There is
// no transaction spanning both stores: a failure between the blob write and
// the metadata write surfaces to the caller as an internal error.
type FileService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	blobs blob.Store
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, blobs blob.Store) *FileService {
	return &FileService{db: db, repos: m, blobs: blobs}
}

// storageKey places blobs under the owner's prefix, keyed by the file id.
func storageKey(userID, fileID, fileName string) string {
	return fmt.Sprintf("%s/%s%s", userID, fileID, path.Ext(fileName))
}

// Upload writes the blob first, then the metadata row.
func (s *FileService) Upload(ctx context.Context, userID, fileName, contentType string, size int64, folderID string, body io.Reader) (*models.File, error) {
	if fileName == "" {
		return nil, common.ErrorValidation
	}

	fileID := uuid.NewString()
	key := storageKey(userID, fileID, fileName)

	if err := s.blobs.Upload(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("error uploading blob: %w", err)
	}

	repo := s.repos.Files(s.db)
	file, err := repo.Create(ctx, &models.File{
		ID:          fileID,
		UserID:      userID,
		FileName:    fileName,
		FileSize:    size,
		ContentType: contentType,
		StorageKey:  key,
		FolderID:    folderID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating file metadata: %w", err)
	}
	return file, nil
}

func (s *FileService) List(ctx context.Context, userID string) ([]*models.File, error) {
	return s.repos.Files(s.db).ListByUser(ctx, userID)
}

// Get returns one file's metadata, owner-scoped.
func (s *FileService) Get(ctx context.Context, id, userID string) (*models.File, error) {
	return s.repos.Files(s.db).GetByID(ctx, id, userID)
}

// Download resolves the metadata (owner-scoped) and opens the blob for
// streaming. The caller must close the returned reader.
func (s *FileService) Download(ctx context.Context, id, userID string) (*models.File, io.ReadCloser, error) {
	file, err := s.repos.Files(s.db).GetByID(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.blobs.Download(ctx, file.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("error downloading blob: %w", err)
	}
	return file, body, nil
}

// Delete removes the blob, then the metadata row. Ownership is checked by
// the initial lookup, so a foreign file never reaches the blob store.
func (s *FileService) Delete(ctx context.Context, id, userID string) error {
	repo := s.repos.Files(s.db)

	file, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, file.StorageKey); err != nil {
		return fmt.Errorf("error deleting blob: %w", err)
	}

	if err := repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting file metadata: %w", err)
	}
	return nil
}
