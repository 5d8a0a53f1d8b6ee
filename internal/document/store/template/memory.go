package template

import (
	"context"
	"sync"

	appmodels "caseflow/internal/application/models"
	"caseflow/internal/document/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
)

// InMemoryStore is a slice-backed TemplateStore. Insertion order is preserved
// so the checklist generator sees a stable template order, matching the
// postgres store's created_at ordering.
type InMemoryStore struct {
	mu        sync.RWMutex
	templates []*models.Template
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func cloneTemplate(t *models.Template) *models.Template {
	cp := *t
	return &cp
}

// CreateIfNameAvailable inserts the template unless one already exists for
// the same (company, stage, name).
func (s *InMemoryStore) CreateIfNameAvailable(_ context.Context, tpl *models.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.templates {
		if existing.CompanyID == tpl.CompanyID && existing.Stage == tpl.Stage && existing.Name == tpl.Name {
			return sentinel.ErrConflict
		}
	}
	s.templates = append(s.templates, cloneTemplate(tpl))
	return nil
}

func (s *InMemoryStore) FindByCompanyAndID(_ context.Context, companyID id.CompanyID, templateID id.DocumentTemplateID) (*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tpl := range s.templates {
		if tpl.CompanyID == companyID && tpl.ID == templateID {
			return cloneTemplate(tpl), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByCompanyAndStage(_ context.Context, companyID id.CompanyID, stage appmodels.Stage) ([]*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Template
	for _, tpl := range s.templates {
		if tpl.CompanyID == companyID && tpl.Stage == stage {
			out = append(out, cloneTemplate(tpl))
		}
	}
	return out, nil
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

func (s *InMemoryStore) Update(_ context.Context, companyID id.CompanyID, tpl *models.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.templates {
		if existing.CompanyID == companyID && existing.ID == tpl.ID {
			for _, other := range s.templates {
				if other.ID != tpl.ID && other.CompanyID == companyID &&
					other.Stage == tpl.Stage && other.Name == tpl.Name {
					return sentinel.ErrConflict
				}
			}
			s.templates[i] = cloneTemplate(tpl)
			return nil
		}
	}
	return sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, companyID id.CompanyID, templateID id.DocumentTemplateID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.templates {
		if existing.CompanyID == companyID && existing.ID == templateID {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return sentinel.ErrNotFound
}
