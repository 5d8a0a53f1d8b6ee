package store

import (
	"context"
	"sync"

	"caseflow/internal/directory/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
)

// InMemoryStore is a map-backed DirectoryStore for unit tests and seeding.
type InMemoryStore struct {
	mu         sync.RWMutex
	candidates map[id.CandidateID]*models.Candidate
	clients    map[id.ClientID]*models.Client
	brokers    map[id.BrokerID]*models.Broker
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		candidates: make(map[id.CandidateID]*models.Candidate),
		clients:    make(map[id.ClientID]*models.Client),
		brokers:    make(map[id.BrokerID]*models.Broker),
	}
}

// SeedCandidate adds a candidate row. Test/seed helper.
func (s *InMemoryStore) SeedCandidate(c *models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.candidates[c.ID] = &cp
}

// SeedClient adds a client row. Test/seed helper.
func (s *InMemoryStore) SeedClient(c *models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.clients[c.ID] = &cp
}

// SeedBroker adds a broker row. Test/seed helper.
func (s *InMemoryStore) SeedBroker(b *models.Broker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.brokers[b.ID] = &cp
}

func (s *InMemoryStore) FindCandidate(_ context.Context, candidateID id.CandidateID) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.candidates[candidateID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryStore) FindClient(_ context.Context, clientID id.ClientID) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[clientID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryStore) FindBroker(_ context.Context, brokerID id.BrokerID) (*models.Broker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brokers[brokerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *b
	return &cp, nil
}
