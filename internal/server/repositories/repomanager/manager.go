package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cloudkeeper/internal/dbx"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/files"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/folders"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can use the same repository code inside and outside transactions.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Files(db dbx.DBTX) files.Repository
	Notes(db dbx.DBTX) notes.Repository
	Folders(db dbx.DBTX) folders.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
