package models

import "time"

// Note is a user-owned text note with optional tags.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
