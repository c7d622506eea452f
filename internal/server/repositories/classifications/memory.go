package classifications

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	log    []models.Classification
	nextID uint64
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, now: time.Now}
}

func (r *MemoryRepository) Add(ctx context.Context, c *models.Classification) (*models.Classification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := *c
	rec.ID = r.nextID
	rec.CreatedAt = r.now().UTC()
	r.nextID++
	r.log = append(r.log, rec)
	return &rec, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uint64) (*models.Classification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// ids are assigned sequentially from 1 and records are never removed
	if id == 0 || id > uint64(len(r.log)) {
		return nil, common.ErrNotFound
	}
	rec := r.log[id-1]
	return &rec, nil
}

func (r *MemoryRepository) List(ctx context.Context, p ListParams) ([]models.Classification, error) {
	r.mu.RLock()
	all := slices.Clone(r.log)
	r.mu.RUnlock()

	slices.SortStableFunc(all, compareBy(p.Sort))

	if p.Page < 1 {
		p.Page = 1
	}
	start := (p.Page - 1) * p.Limit
	if p.Limit < 1 || start >= len(all) {
		return []models.Classification{}, nil
	}
	end := min(start+p.Limit, len(all))
	return all[start:end], nil
}

func compareBy(s models.ClassificationSort) func(a, b models.Classification) int {
	byTime := func(a, b models.Classification) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}

	switch s {
	case models.SortTimeAsc:
		return byTime
	case models.SortSourceAsc:
		return func(a, b models.Classification) int {
			if c := cmp.Compare(a.Source, b.Source); c != 0 {
				return c
			}
			return -byTime(a, b)
		}
	case models.SortSourceDesc:
		return func(a, b models.Classification) int {
			if c := cmp.Compare(b.Source, a.Source); c != 0 {
				return c
			}
			return -byTime(a, b)
		}
	default:
		return func(a, b models.Classification) int { return -byTime(a, b) }
	}
}
