// Package classifications declares the classification log repository.
package classifications

import (
	"context"

	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
)

// ListParams selects one page of the log. Page is 1-based.
type ListParams struct {
	Page  int
	Limit int
	Sort  models.ClassificationSort
}

type Repository interface {
	// Add appends c to the log, assigning ID and CreatedAt.
	Add(ctx context.Context, c *models.Classification) (*models.Classification, error)
	// Get returns common.ErrNotFound for unknown ids.
	Get(ctx context.Context, id uint64) (*models.Classification, error)
	// List returns one page; pages past the end are empty, never nil.
	List(ctx context.Context, p ListParams) ([]models.Classification, error)
}
