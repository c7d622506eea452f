package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/repomanager"
)

// accessKeyBytes is the entropy of a generated access key; the key itself
// is twice as many hex characters.
const accessKeyBytes = 32

// makeKey is a variable so tests can make keys predictable.
var makeKey = func() (string, error) { return common.MakeRandHexString(accessKeyBytes) }

// SystemService registers external systems. Access keys are returned once
// by Register and only their hashes are stored.
type SystemService struct {
	repomanager repomanager.RepositoryManager
}

func NewSystemService(m repomanager.RepositoryManager) *SystemService {
	return &SystemService{repomanager: m}
}

// Register creates a system and returns its plain access key. The name is
// stored trimmed; a blank one yields common.ErrValidation and a taken one
// common.ErrAlreadyExists.
func (s *SystemService) Register(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: system name is blank", common.ErrValidation)
	}

	key, err := makeKey()
	if err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	hash, err := hashSecret(key)
	if err != nil {
		return "", fmt.Errorf("hash key: %w", err)
	}
	if err := s.repomanager.Systems().Create(ctx, &models.ExternalSystem{Name: name, KeyHash: hash}); err != nil {
		return "", err
	}
	return key, nil
}

// Names lists registered systems by name only.
func (s *SystemService) Names(ctx context.Context) ([]string, error) {
	list, err := s.repomanager.Systems().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	names := make([]string, 0, len(list))
	for _, sys := range list {
		names = append(names, sys.Name)
	}
	return names, nil
}

// Delete removes a system and revokes its tokens; unknown names yield
// common.ErrNotFound.
func (s *SystemService) Delete(ctx context.Context, name string) error {
	if err := s.repomanager.Systems().Delete(ctx, name); err != nil {
		return err
	}
	if _, err := s.repomanager.Sessions().DeleteByUser(ctx, models.SystemUserID(name)); err != nil {
		return fmt.Errorf("revoke system sessions: %w", err)
	}
	return nil
}

// Verify reports whether key belongs to the system called name.
func (s *SystemService) Verify(ctx context.Context, name, key string) (bool, error) {
	list, err := s.repomanager.Systems().List(ctx)
	if err != nil {
		return false, fmt.Errorf("list systems: %w", err)
	}
	for _, sys := range list {
		if sys.Name == name {
			return checkSecret(sys.KeyHash, key), nil
		}
	}
	return false, nil
}
