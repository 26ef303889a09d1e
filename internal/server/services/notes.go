package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// NoteService implements note CRUD. All single-note operations are
// owner-scoped by the repository's compound key.
type NoteService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repos: m}
}

func (s *NoteService) Create(ctx context.Context, userID, title, content string, tags []string) (*models.Note, error) {
	return s.repos.Notes(s.db).Create(ctx, &models.Note{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Content: content,
		Tags:    tags,
	})
}

func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	return s.repos.Notes(s.db).ListByUser(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, id, userID string) (*models.Note, error) {
	return s.repos.Notes(s.db).GetByID(ctx, id, userID)
}

// NoteUpdate carries the fields a PATCH may change; nil pointers leave the
// stored value untouched.
type NoteUpdate struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// Update overlays the provided fields onto the stored note and persists it.
func (s *NoteService) Update(ctx context.Context, id, userID string, upd NoteUpdate) (*models.Note, error) {
	repo := s.repos.Notes(s.db)

	note, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		note.Title = *upd.Title
	}
	if upd.Content != nil {
		note.Content = *upd.Content
	}
	if upd.Tags != nil {
		note.Tags = *upd.Tags
	}

	if err := repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id, userID string) error {
	return s.repos.Notes(s.db).Delete(ctx, id, userID)
}
