// Package users declares the user repository and its in-memory
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
)

type Repository interface {
	// Create stores user and returns it with ID and CreatedAt filled in.
	// A taken username yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByLogin returns common.ErrNotFound for unknown logins.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID string, hash []byte) error
}
