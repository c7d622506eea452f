// Package systems declares the external-system repository.
package systems

import (
	"context"

	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
)

type Repository interface {
	// Create registers s. A taken name yields common.ErrAlreadyExists.
	Create(ctx context.Context, s *models.ExternalSystem) error
	// List returns systems in registration order.
	List(ctx context.Context) ([]models.ExternalSystem, error)
	// Delete returns common.ErrNotFound for unknown names.
	Delete(ctx context.Context, name string) error
}
