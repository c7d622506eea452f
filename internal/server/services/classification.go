package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/classifications"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/repomanager"
)

// AdminSource is the source name recorded for texts submitted by operators.
const AdminSource = "admin"

// DefaultLogLimit is the page size used when the request has none.
const DefaultLogLimit = 15

// ClassificationService records classifications. The stand-in has no model:
// every text is labelled models.ResultDemo.
type ClassificationService struct {
	repomanager repomanager.RepositoryManager
}

func NewClassificationService(m repomanager.RepositoryManager) *ClassificationService {
	return &ClassificationService{repomanager: m}
}

func (s *ClassificationService) Classify(ctx context.Context, text, source string) (*models.Classification, error) {
	rec, err := s.repomanager.Classifications().Add(ctx, &models.Classification{
		Text:   text,
		Result: models.ResultDemo,
		Source: source,
	})
	if err != nil {
		return nil, fmt.Errorf("store classification: %w", err)
	}
	return rec, nil
}

// Get returns common.ErrNotFound for unknown ids.
func (s *ClassificationService) Get(ctx context.Context, id uint64) (*models.Classification, error) {
	return s.repomanager.Classifications().Get(ctx, id)
}

func (s *ClassificationService) List(ctx context.Context, p classifications.ListParams) ([]models.Classification, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLogLimit
	}
	list, err := s.repomanager.Classifications().List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	return list, nil
}
