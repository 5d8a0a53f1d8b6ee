package checklist

import (
	"context"
	"sync"
	"time"

	"caseflow/internal/application/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
)

// InMemoryStore is a map-backed ChecklistStore. Items keep insertion order
// per application so generation stays deterministic, matching the postgres
// store's created_at ordering.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[id.ApplicationID][]*models.ChecklistItem
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{items: make(map[id.ApplicationID][]*models.ChecklistItem)}
}

func cloneItem(item *models.ChecklistItem) *models.ChecklistItem {
	cp := *item
	return &cp
}

// CreateIfAbsent inserts the item unless one already exists for the same
// (application, document name, stage). Returns true when a row was created.
func (s *InMemoryStore) CreateIfAbsent(_ context.Context, item *models.ChecklistItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items[item.ApplicationID] {
		if existing.DocumentName == item.DocumentName && existing.Stage == item.Stage {
			return false, nil
		}
	}
	s.items[item.ApplicationID] = append(s.items[item.ApplicationID], cloneItem(item))
	return true, nil
}

func (s *InMemoryStore) ListByApplication(_ context.Context, appID id.ApplicationID) ([]*models.ChecklistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ChecklistItem, 0, len(s.items[appID]))
	for _, item := range s.items[appID] {
		out = append(out, cloneItem(item))
	}
	return out, nil
}

func (s *InMemoryStore) UpdateStatus(_ context.Context, appID id.ApplicationID, itemID id.ChecklistItemID, status models.DocumentStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items[appID] {
		if existing.ID == itemID {
			existing.Status = status
			existing.UpdatedAt = updatedAt
			return nil
		}
	}
	return sentinel.ErrNotFound
}

func (s *InMemoryStore) DeleteByApplication(_ context.Context, appID id.ApplicationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, appID)
	return nil
}
