package services

import (
	"bytes"
	"context"
	"database/sql"
	"io"

	"github.com/dmitrijs2005/cloudkeeper/internal/common"
	"github.com/dmitrijs2005/cloudkeeper/internal/dbx"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/files"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/folders"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/users"
)

// ---- fakes ----

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User

	createErr     error
	getByEmailErr error
	created       []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[string]*models.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, dup := f.byEmail[user.Email]; dup {
		return nil, common.ErrEmailExists
	}
	user.ID = "id-" + user.Email
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	f.created = append(f.created, user)
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeFileRepo struct {
	byKey map[string]*models.File // "<id>/<userID>"

	createErr error
	deleteErr error
	deleted   []string
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{byKey: map[string]*models.File{}}
}

func (f *fakeFileRepo) Create(ctx context.Context, file *models.File) (*models.File, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.byKey[file.ID+"/"+file.UserID] = file
	return file, nil
}

func (f *fakeFileRepo) ListByUser(ctx context.Context, userID string) ([]*models.File, error) {
	var out []*models.File
	for _, file := range f.byKey {
		if file.UserID == userID {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeFileRepo) GetByID(ctx context.Context, id, userID string) (*models.File, error) {
	if file, ok := f.byKey[id+"/"+userID]; ok {
		return file, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFileRepo) Delete(ctx context.Context, id, userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byKey[id+"/"+userID]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byKey, id+"/"+userID)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNoteRepo struct {
	byKey map[string]*models.Note

	updated []*models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byKey: map[string]*models.Note{}}
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	f.byKey[note.ID+"/"+note.UserID] = note
	return note, nil
}

func (f *fakeNoteRepo) ListByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	var out []*models.Note
	for _, n := range f.byKey {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id, userID string) (*models.Note, error) {
	if n, ok := f.byKey[id+"/"+userID]; ok {
		return n, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeNoteRepo) Update(ctx context.Context, note *models.Note) error {
	if _, ok := f.byKey[note.ID+"/"+note.UserID]; !ok {
		return common.ErrorNotFound
	}
	f.byKey[note.ID+"/"+note.UserID] = note
	f.updated = append(f.updated, note)
	return nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id, userID string) error {
	if _, ok := f.byKey[id+"/"+userID]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byKey, id+"/"+userID)
	return nil
}

type fakeFolderRepo struct {
	list []*models.Folder
}

func (f *fakeFolderRepo) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	f.list = append(f.list, folder)
	return folder, nil
}

func (f *fakeFolderRepo) ListByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	return f.list, nil
}

type fakeRepoManager struct {
	users   *fakeUserRepo
	files   *fakeFileRepo
	notes   *fakeNoteRepo
	folders *fakeFolderRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   newFakeUserRepo(),
		files:   newFakeFileRepo(),
		notes:   newFakeNoteRepo(),
		folders: &fakeFolderRepo{},
	}
}

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository       { return m.users }
func (m *fakeRepoManager) Files(db dbx.DBTX) files.Repository       { return m.files }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notes.Repository       { return m.notes }
func (m *fakeRepoManager) Folders(db dbx.DBTX) folders.Repository   { return m.folders }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

type fakeBlobStore struct {
	objects map[string][]byte

	uploadErr   error
	downloadErr error
	deleteErr   error
	deleted     []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (f *fakeBlobStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = b
	return nil
}

func (f *fakeBlobStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	b, ok := f.objects[key]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}
