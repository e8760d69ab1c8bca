package repository

import (
	"context"
	"sync"

	"github.com/mcnielat/bankapp/internal/models"
)

// MemoryAccountStore keeps accounts in a mutex-guarded map. Used by tests
// and as the wiring fallback when no database is configured. Records are
// copied in and out so callers never alias internal state.
type MemoryAccountStore struct {
	mu     sync.Mutex
	nextID int64
	accts  map[int64]models.Account
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accts: make(map[int64]models.Account)}
}

func (s *MemoryAccountStore) GetByID(_ context.Context, accountID int64) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accts[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := a
	return &cp, nil
}

// SaveAll validates every record before touching the map so a missing
// account leaves all the others unchanged.
func (s *MemoryAccountStore) SaveAll(_ context.Context, accounts ...*models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range accounts {
		if _, ok := s.accts[a.AccountID]; !ok {
			return ErrNotFound
		}
	}
	for _, a := range accounts {
		s.accts[a.AccountID] = *a
	}
	return nil
}

func (s *MemoryAccountStore) CreateWithNewID(_ context.Context, account *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	created := *account
	created.AccountID = s.nextID
	s.accts[created.AccountID] = created
	cp := created
	return &cp, nil
}
