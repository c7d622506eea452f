// Package sessions declares the server-side session repository. A session
// backs each issued access token, so deleting it revokes the token.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
)

// Repository defines operations for opening, looking up and revoking sessions.
type Repository interface {
	// Create opens a session for userID that expires after validity.
	Create(ctx context.Context, userID string, validity time.Duration) (*models.Session, error)

	// Find returns common.ErrNotFound for unknown or expired sessions.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Delete revokes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByUser revokes every session of userID and reports how many
	// there were.
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
