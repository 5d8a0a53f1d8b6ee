package template

import (
	"context"
	"sync"

	"caseflow/internal/feetemplate/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
)

// InMemoryStore is a map-backed FeeTemplateStore for unit tests and local
// development.
type InMemoryStore struct {
	mu        sync.RWMutex
	templates map[id.FeeTemplateID]*models.Template
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{templates: make(map[id.FeeTemplateID]*models.Template)}
}

func cloneTemplate(t *models.Template) *models.Template {
	cp := *t
	return &cp
}

func (s *InMemoryStore) Create(_ context.Context, tpl *models.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.templates[tpl.ID]; exists {
		return sentinel.ErrConflict
	}
	s.templates[tpl.ID] = cloneTemplate(tpl)
	return nil
}

func (s *InMemoryStore) FindByCompanyAndID(_ context.Context, companyID id.CompanyID, templateID id.FeeTemplateID) (*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.templates[templateID]
	if !ok || tpl.CompanyID != companyID {
		return nil, sentinel.ErrNotFound
	}
	return cloneTemplate(tpl), nil
}

func (s *InMemoryStore) ListByCompany(_ context.Context, companyID id.CompanyID) ([]*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Template
	for _, tpl := range s.templates {
		if tpl.CompanyID == companyID {
			out = append(out, cloneTemplate(tpl))
		}
	}
	return out, nil
}
