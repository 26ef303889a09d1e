package models

import "time"

// File describes metadata for an uploaded blob. The bytes themselves live in
// object storage under StorageKey; this row only records ownership and
// display attributes.
type File struct {
	ID string
	// UserID is the owner and partition key; every lookup must include it.
	UserID      string
	FileName    string
	FileSize    int64
	ContentType string
	// StorageKey is the object-storage key of the blob ("<userID>/<id><ext>").
	StorageKey string
	// FolderID is optional; empty means the file sits at the root.
	FolderID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
