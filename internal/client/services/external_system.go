package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

// ExternalSystemService manages the API clients allowed to call the
// classification service. An access key is only ever available from the
// Registration returned by Add.
type ExternalSystemService interface {
	List(ctx context.Context) ([]models.ExternalSystem, error)
	Add(ctx context.Context, name string) (*models.Registration, error)
	Delete(ctx context.Context, name string) error
}

type externalSystemService struct {
	client client.Client
}

func NewExternalSystemService(c client.Client) ExternalSystemService {
	return &externalSystemService{client: c}
}

func (s *externalSystemService) List(ctx context.Context) ([]models.ExternalSystem, error) {
	list, err := s.client.ListExternalSystems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list external systems: %w", err)
	}
	return list, nil
}

func (s *externalSystemService) Add(ctx context.Context, name string) (*models.Registration, error) {
	name = NormalizeSystemName(name)
	if err := validate(systemNamePayload{Name: name}); err != nil {
		return nil, err
	}
	reg, err := s.client.AddExternalSystem(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("add external system: %w", err)
	}
	return reg, nil
}

func (s *externalSystemService) Delete(ctx context.Context, name string) error {
	name = NormalizeSystemName(name)
	if err := validate(systemNamePayload{Name: name}); err != nil {
		return err
	}
	if err := s.client.DeleteExternalSystem(ctx, name); err != nil {
		return fmt.Errorf("delete external system: %w", err)
	}
	return nil
}
