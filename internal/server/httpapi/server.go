// Package httpapi exposes the application over HTTP: a JSON API under /api/
// plus the page-level access gate. Handlers depend on narrow provider
// interfaces so tests can substitute fakes.
package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cloudkeeper/internal/logging"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/services"
)

// UserProvider is the account surface the handlers need.
type UserProvider interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// FileProvider is the file surface the handlers need.
type FileProvider interface {
	Upload(ctx context.Context, userID, fileName, contentType string, size int64, folderID string, body io.Reader) (*models.File, error)
	List(ctx context.Context, userID string) ([]*models.File, error)
	Get(ctx context.Context, id, userID string) (*models.File, error)
	Download(ctx context.Context, id, userID string) (*models.File, io.ReadCloser, error)
	Delete(ctx context.Context, id, userID string) error
}

// NoteProvider is the note surface the handlers need.
type NoteProvider interface {
	Create(ctx context.Context, userID, title, content string, tags []string) (*models.Note, error)
	List(ctx context.Context, userID string) ([]*models.Note, error)
	Get(ctx context.Context, id, userID string) (*models.Note, error)
	Update(ctx context.Context, id, userID string, upd services.NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, id, userID string) error
}

// FolderProvider is the folder surface the handlers need.
type FolderProvider interface {
	Create(ctx context.Context, userID, name, parentFolderID string) (*models.Folder, error)
	List(ctx context.Context, userID string) ([]*models.Folder, error)
}

type Server struct {
	address       string
	logger        logging.Logger
	users         UserProvider
	files         FileProvider
	notes         NoteProvider
	folders       FolderProvider
	jwtSecret     []byte
	tokenValidity time.Duration
	secureCookies bool
}

func NewServer(address string, l logging.Logger, users UserProvider, files FileProvider,
	notes NoteProvider, folders FolderProvider, secretKey string,
	tokenValidity time.Duration, secureCookies bool) (*Server, error) {
	return &Server{
		address:       address,
		logger:        l.With("module", "http_server"),
		users:         users,
		files:         files,
		notes:         notes,
		folders:       folders,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
		secureCookies: secureCookies,
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
