package systems

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	systems []models.ExternalSystem
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, s *models.ExternalSystem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(s.Name) >= 0 {
		return fmt.Errorf("system %q: %w", s.Name, common.ErrAlreadyExists)
	}
	rec := *s
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.systems = append(r.systems, rec)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.ExternalSystem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.systems)
	if out == nil {
		out = []models.ExternalSystem{}
	}
	return out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("system %q: %w", name, common.ErrNotFound)
	}
	r.systems = slices.Delete(r.systems, i, i+1)
	return nil
}

// indexOf must be called with mu held.
func (r *MemoryRepository) indexOf(name string) int {
	return slices.IndexFunc(r.systems, func(s models.ExternalSystem) bool { return s.Name == name })
}
