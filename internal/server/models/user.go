// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account record. Email is unique and compared exactly as stored.
// PasswordHash is an opaque bcrypt digest; plaintext is never persisted.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
