package httpapi

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/cloudkeeper/internal/common"
	"github.com/dmitrijs2005/cloudkeeper/internal/logging"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/auth"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeUsers struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User

	loginErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}}
}

func (f *fakeUsers) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, dup := f.byEmail[email]; dup {
		return nil, common.ErrEmailExists
	}
	u := &models.User{ID: uuid.NewString(), Email: email, Name: name, PasswordHash: password}
	f.byEmail[email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u, ok := f.byEmail[email]
	if !ok || u.PasswordHash != password {
		return nil, common.ErrorUnauthorized
	}
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeFiles struct {
	byKey map[string]*models.File // "<id>/<userID>"
	blobs map[string][]byte
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{byKey: map[string]*models.File{}, blobs: map[string][]byte{}}
}

func (f *fakeFiles) Upload(ctx context.Context, userID, fileName, contentType string, size int64, folderID string, body io.Reader) (*models.File, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	file := &models.File{
		ID:          uuid.NewString(),
		UserID:      userID,
		FileName:    fileName,
		FileSize:    size,
		ContentType: contentType,
		FolderID:    folderID,
	}
	f.byKey[file.ID+"/"+userID] = file
	f.blobs[file.ID] = b
	return file, nil
}

func (f *fakeFiles) List(ctx context.Context, userID string) ([]*models.File, error) {
	var out []*models.File
	for _, file := range f.byKey {
		if file.UserID == userID {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeFiles) Get(ctx context.Context, id, userID string) (*models.File, error) {
	if file, ok := f.byKey[id+"/"+userID]; ok {
		return file, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFiles) Download(ctx context.Context, id, userID string) (*models.File, io.ReadCloser, error) {
	file, err := f.Get(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	return file, io.NopCloser(bytes.NewReader(f.blobs[id])), nil
}

func (f *fakeFiles) Delete(ctx context.Context, id, userID string) error {
	if _, ok := f.byKey[id+"/"+userID]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byKey, id+"/"+userID)
	delete(f.blobs, id)
	return nil
}

type fakeNotes struct {
	byKey map[string]*models.Note
}

func newFakeNotes() *fakeNotes {
	return &fakeNotes{byKey: map[string]*models.Note{}}
}

func (f *fakeNotes) Create(ctx context.Context, userID, title, content string, tags []string) (*models.Note, error) {
	n := &models.Note{ID: uuid.NewString(), UserID: userID, Title: title, Content: content, Tags: tags}
	f.byKey[n.ID+"/"+userID] = n
	return n, nil
}

func (f *fakeNotes) List(ctx context.Context, userID string) ([]*models.Note, error) {
	var out []*models.Note
	for _, n := range f.byKey {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotes) Get(ctx context.Context, id, userID string) (*models.Note, error) {
	if n, ok := f.byKey[id+"/"+userID]; ok {
		return n, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeNotes) Update(ctx context.Context, id, userID string, upd services.NoteUpdate) (*models.Note, error) {
	n, err := f.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Tags != nil {
		n.Tags = *upd.Tags
	}
	return n, nil
}

func (f *fakeNotes) Delete(ctx context.Context, id, userID string) error {
	if _, ok := f.byKey[id+"/"+userID]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byKey, id+"/"+userID)
	return nil
}

type fakeFolders struct {
	list []*models.Folder
}

func (f *fakeFolders) Create(ctx context.Context, userID, name, parentFolderID string) (*models.Folder, error) {
	folder := &models.Folder{ID: uuid.NewString(), UserID: userID, Name: name, ParentFolderID: parentFolderID}
	f.list = append(f.list, folder)
	return folder, nil
}

func (f *fakeFolders) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	return f.list, nil
}

type testEnv struct {
	srv     *Server
	users   *fakeUsers
	files   *fakeFiles
	notes   *fakeNotes
	folders *fakeFolders
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	users := newFakeUsers()
	files := newFakeFiles()
	notes := newFakeNotes()
	folders := &fakeFolders{}

	srv, err := NewServer(":0", logger, users, files, notes, folders,
		testSecret, 7*24*time.Hour, false)
	require.NoError(t, err)

	return &testEnv{srv: srv, users: users, files: files, notes: notes, folders: folders}
}

// sessionFor registers a user and returns it with a valid session token.
func (e *testEnv) sessionFor(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	user, err := e.users.Register(context.Background(), "Test User", email, "pass1234")
	require.NoError(t, err)

	token, err := auth.GenerateToken(user.ID, user.Email, []byte(testSecret), time.Hour)
	require.NoError(t, err)

	return user, token
}
