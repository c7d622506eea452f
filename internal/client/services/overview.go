package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
	"github.com/dmitrijs2005/llmpid-console/internal/client/token"
)

// Overview is everything the dashboard shows at once.
type Overview struct {
	Identity        token.Identity
	Query           models.ListQuery
	Classifications []models.Classification
	Systems         []models.ExternalSystem
}

type OverviewService interface {
	Load(ctx context.Context, q models.ListQuery) (*Overview, error)
}

type overviewService struct {
	auth           AuthService
	classification ClassificationService
	systems        ExternalSystemService
}

func NewOverviewService(auth AuthService, cs ClassificationService, es ExternalSystemService) OverviewService {
	return &overviewService{auth: auth, classification: cs, systems: es}
}

// Load fetches the history page and the external systems concurrently. The
// first failure cancels the other call.
func (s *overviewService) Load(ctx context.Context, q models.ListQuery) (*Overview, error) {
	q = q.Normalize()
	ov := &Overview{Identity: s.auth.Identity(), Query: q}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.classification.List(gctx, q)
		if err != nil {
			return err
		}
		ov.Classifications = list
		return nil
	})
	g.Go(func() error {
		list, err := s.systems.List(gctx)
		if err != nil {
			return err
		}
		ov.Systems = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ov, nil
}
