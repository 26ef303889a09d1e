package models

import "time"

// Folder groups files for display purposes. Hierarchy is not enforced;
// ParentFolderID is stored as given.
type Folder struct {
	ID             string
	UserID         string
	Name           string
	ParentFolderID string
	CreatedAt      time.Time
}
