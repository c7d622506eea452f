package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

type ClassificationService interface {
	Classify(ctx context.Context, text string) (*models.ClassificationResult, error)
	List(ctx context.Context, q models.ListQuery) ([]models.Classification, error)
}

type classificationService struct {
	client client.Client
}

func NewClassificationService(c client.Client) ClassificationService {
	return &classificationService{client: c}
}

func (s *classificationService) Classify(ctx context.Context, text string) (*models.ClassificationResult, error) {
	text = strings.TrimSpace(text)
	if err := validate(classifyPayload{Text: text}); err != nil {
		return nil, err
	}
	res, err := s.client.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	if res.Text == "" {
		res.Text = text
	}
	return res, nil
}

// List fetches one page of the history. Out of range paging values are
// normalized before the call.
func (s *classificationService) List(ctx context.Context, q models.ListQuery) ([]models.Classification, error) {
	list, err := s.client.ListClassifications(ctx, q.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	return list, nil
}
