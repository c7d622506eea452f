// Package repomanager hands out the API's repositories from one place so
// services do not care which storage backs them.
package repomanager

import (
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/classifications"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/systems"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Sessions() sessions.Repository
	Classifications() classifications.Repository
	Systems() systems.Repository
}

// InMemoryRepositoryManager keeps everything in process memory; state is
// lost on restart.
type InMemoryRepositoryManager struct {
	users           *users.MemoryRepository
	sessions        *sessions.MemoryRepository
	classifications *classifications.MemoryRepository
	systems         *systems.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:           users.NewMemoryRepository(),
		sessions:        sessions.NewMemoryRepository(),
		classifications: classifications.NewMemoryRepository(),
		systems:         systems.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) Sessions() sessions.Repository { return m.sessions }

func (m *InMemoryRepositoryManager) Classifications() classifications.Repository {
	return m.classifications
}

func (m *InMemoryRepositoryManager) Systems() systems.Repository { return m.systems }
