// Package store provides ledger persistence.
package store

import (
	"context"
	"sync"

	"caseflow/internal/ledger/models"
	id "caseflow/pkg/domain"
)

// InMemoryStore is the test double for the ledger.
type InMemoryStore struct {
	mu       sync.RWMutex
	payments map[id.ApplicationID][]*models.Payment
	costs    map[id.ApplicationID][]*models.Cost
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		payments: make(map[id.ApplicationID][]*models.Payment),
		costs:    make(map[id.ApplicationID][]*models.Cost),
	}
}

func (s *InMemoryStore) AddPayment(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *p
	s.payments[p.ApplicationID] = append(s.payments[p.ApplicationID], &clone)
	return nil
}

func (s *InMemoryStore) AddCost(_ context.Context, c *models.Cost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *c
	s.costs[c.ApplicationID] = append(s.costs[c.ApplicationID], &clone)
	return nil
}

func (s *InMemoryStore) ListPayments(_ context.Context, appID id.ApplicationID) ([]*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Payment, 0, len(s.payments[appID]))
	for _, p := range s.payments[appID] {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (s *InMemoryStore) ListCosts(_ context.Context, appID id.ApplicationID) ([]*models.Cost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Cost, 0, len(s.costs[appID]))
	for _, c := range s.costs[appID] {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}
