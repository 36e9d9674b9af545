// Package users declares the user store used by the password operations and
// its PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophpass/internal/server/models"
)

// Repository reads and updates user accounts. Missing accounts are reported
// as common.ErrorNotFound.
type Repository interface {
	// FindByUsername also returns soft-deleted accounts.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindActiveByUsername(ctx context.Context, username string) (*models.User, error)
	FindActiveByID(ctx context.Context, id int64) (*models.User, error)

	// UpdatePassword stores hash for the user and returns the number of
	// affected rows.
	UpdatePassword(ctx context.Context, id int64, hash string) (int64, error)
}
