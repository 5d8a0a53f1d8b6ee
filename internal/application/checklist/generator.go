// Package checklist materializes document checklist items from the tenant's
// template catalog when an application enters a stage.
package checklist

import (
	"context"

	"caseflow/internal/application/models"
	docmodels "caseflow/internal/document/models"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/requestcontext"
)

// TemplateCatalog is the read contract the generator needs from the document
// requirement catalog: all rules for (company, stage) in stable order.
type TemplateCatalog interface {
	ListForStage(ctx context.Context, companyID id.CompanyID, stage models.Stage) ([]*docmodels.Template, error)
}

// ItemStore is the write contract: create-if-absent keyed by
// (application, document name, stage).
type ItemStore interface {
	CreateIfAbsent(ctx context.Context, item *models.ChecklistItem) (bool, error)
}

// Generator computes and persists the checklist items an application must
// carry for a stage.
//
// Generation is idempotent and additive: calling it twice for the same stage
// creates nothing new, and it never touches items from other stages. Both
// create and transition call it inside their transaction, so a template
// lookup failure aborts the whole unit of work; an application never exists
// without its stage's checklist having been attempted.
type Generator struct {
	catalog TemplateCatalog
	items   ItemStore
}

// New constructs a Generator.
func New(catalog TemplateCatalog, items ItemStore) *Generator {
	return &Generator{catalog: catalog, items: items}
}

// Generate creates the missing checklist items for (application, stage) and
// returns only the newly created ones, in template order.
func (g *Generator) Generate(ctx context.Context, appID id.ApplicationID, stage models.Stage, companyID id.CompanyID) ([]*models.ChecklistItem, error) {
	templates, err := g.catalog.ListForStage(ctx, companyID, stage)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load document templates")
	}

	now := requestcontext.Now(ctx)
	var created []*models.ChecklistItem
	for _, tpl := range templates {
		item := &models.ChecklistItem{
			ID:            id.NewChecklistItemID(),
			ApplicationID: appID,
			DocumentName:  tpl.Name,
			Status:        models.DocumentPending,
			Stage:         stage,
			RequiredFrom:  tpl.RequiredFrom,
			Required:      tpl.Required,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		inserted, err := g.items.CreateIfAbsent(ctx, item)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create checklist item")
		}
		if inserted {
			created = append(created, item)
		}
	}
	return created, nil
}
