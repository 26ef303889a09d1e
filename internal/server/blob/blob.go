// Package blob abstracts the object store holding uploaded file contents.
package blob

import (
	"context"
	"io"
)

// Store moves raw file bytes in and out of object storage. Keys are opaque
// to the store; the metadata layer decides how they are built.
type Store interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
