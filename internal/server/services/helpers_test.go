package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/server/config"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminName = "llmpid_admin"
	adminPass = "initial-pass"
)

// cheapHashing swaps bcrypt's default cost for the minimum one.
func cheapHashing(t *testing.T) {
	t.Helper()
	prev := hashSecret
	hashSecret = func(s string) ([]byte, error) {
		return bcrypt.GenerateFromPassword([]byte(s), bcrypt.MinCost)
	}
	t.Cleanup(func() { hashSecret = prev })
}

func newTestConfig() *config.Config {
	return &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
}

func newUserService(t *testing.T) (*UserService, *repomanager.InMemoryRepositoryManager) {
	t.Helper()
	cheapHashing(t)
	rm := repomanager.NewInMemoryRepositoryManager()
	s := NewUserService(rm, newTestConfig())
	require.NoError(t, s.EnsureAdmin(context.Background(), adminName, adminPass))
	return s, rm
}
