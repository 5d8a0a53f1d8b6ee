// Package ledger exposes the financial read contract of an application:
// payment totals for any tenant member, cost totals for admins only.
package ledger

import (
	"context"
	"errors"

	"caseflow/internal/application/models"
	ledgermodels "caseflow/internal/ledger/models"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/sentinel"
)

// ApplicationLookup scopes ledger reads to the caller's company through the
// application row.
type ApplicationLookup interface {
	FindByCompanyAndID(ctx context.Context, companyID id.CompanyID, appID id.ApplicationID) (*models.Application, error)
}

// Store reads the ledger rows of an application.
type Store interface {
	ListPayments(ctx context.Context, appID id.ApplicationID) ([]*ledgermodels.Payment, error)
	ListCosts(ctx context.Context, appID id.ApplicationID) ([]*ledgermodels.Cost, error)
}

// Summary aggregates an application's ledger. Cost fields are nil for
// non-admin callers, not zero: absence and zero are different facts.
type Summary struct {
	ApplicationID string                  `json:"application_id"`
	TotalPayments int64                   `json:"total_payments"`
	Payments      []*ledgermodels.Payment `json:"payments"`
	TotalCosts    *int64                  `json:"total_costs,omitempty"`
	Costs         []*ledgermodels.Cost    `json:"costs,omitempty"`
}

// Service computes ledger summaries.
type Service struct {
	apps  ApplicationLookup
	store Store
}

func New(apps ApplicationLookup, store Store) *Service {
	return &Service{apps: apps, store: store}
}

// Summarize returns the ledger summary of an application in the caller's
// company.
func (s *Service) Summarize(ctx context.Context, appID id.ApplicationID, identity tenant.Identity) (*Summary, error) {
	if _, err := s.apps.FindByCompanyAndID(ctx, identity.CompanyID, appID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}

	payments, err := s.store.ListPayments(ctx, appID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list payments")
	}

	summary := &Summary{
		ApplicationID: appID.String(),
		Payments:      payments,
	}
	for _, p := range payments {
		summary.TotalPayments += p.Amount
	}

	if identity.IsAdmin() {
		costs, err := s.store.ListCosts(ctx, appID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list costs")
		}
		var total int64
		for _, c := range costs {
			total += c.Amount
		}
		summary.Costs = costs
		summary.TotalCosts = &total
	}
	return summary, nil
}
