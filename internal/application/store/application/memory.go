package application

import (
	"context"
	"sort"
	"sync"

	"caseflow/internal/application/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
)

// InMemoryStore is a map-backed ApplicationStore for unit tests and local
// development. All lookups are scoped by company, mirroring the mandatory
// company_id predicate of the postgres store.
type InMemoryStore struct {
	mu   sync.RWMutex
	apps map[id.ApplicationID]*models.Application
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{apps: make(map[id.ApplicationID]*models.Application)}
}

func clone(a *models.Application) *models.Application {
	cp := *a
	return &cp
}

func (s *InMemoryStore) Create(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.apps[app.ID]; exists {
		return sentinel.ErrConflict
	}
	for _, existing := range s.apps {
		if existing.ShareableLink == app.ShareableLink {
			return sentinel.ErrConflict
		}
	}
	s.apps[app.ID] = clone(app)
	return nil
}

func (s *InMemoryStore) FindByCompanyAndID(_ context.Context, companyID id.CompanyID, appID id.ApplicationID) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.apps[appID]
	if !ok || app.CompanyID != companyID {
		return nil, sentinel.ErrNotFound
	}
	return clone(app), nil
}

func (s *InMemoryStore) FindByShareableLink(_ context.Context, link string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, app := range s.apps {
		if app.ShareableLink == link {
			return clone(app), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByCompany(_ context.Context, companyID id.CompanyID) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Application
	for _, app := range s.apps {
		if app.CompanyID == companyID {
			out = append(out, clone(app))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, companyID id.CompanyID, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.apps[app.ID]
	if !ok || existing.CompanyID != companyID {
		return sentinel.ErrNotFound
	}
	s.apps[app.ID] = clone(app)
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, companyID id.CompanyID, appID id.ApplicationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[appID]
	if !ok || app.CompanyID != companyID {
		return sentinel.ErrNotFound
	}
	delete(s.apps, appID)
	return nil
}
