// Package services contains server-side business logic. This file implements
// UserService, which handles signup, credential verification, and account
// lookup for session handling.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cloudkeeper/internal/common"
	"github.com/dmitrijs2005/cloudkeeper/internal/dbx"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/auth"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/repositories/repomanager"
)

// UserService provides account operations:
// - Register: create users with hashed credentials
// - Login: verify credentials
// - GetByID: resolve the account behind a session
type UserService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewUserService constructs a UserService using the repository manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repos: m}
}

// Register creates a new account. The duplicate check and the insert run in
// one transaction; the unique index backs the check up, so a concurrent
// signup with the same email surfaces as ErrEmailExists either way.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrEmailExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking email: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{Email: email, PasswordHash: hash, Name: name})
		if err != nil {
			if errors.Is(err, common.ErrEmailExists) {
				return common.ErrEmailExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the account. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// GetByID returns the account for a resolved session identity.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}
