// Package service implements fee template management and the validator that
// bounds an application's final fee.
package service

import (
	"context"
	"errors"

	"caseflow/internal/feetemplate/models"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/sentinel"
	"caseflow/pkg/requestcontext"
)

// TemplateStore abstracts fee template persistence.
type TemplateStore interface {
	Create(ctx context.Context, tpl *models.Template) error
	FindByCompanyAndID(ctx context.Context, companyID id.CompanyID, templateID id.FeeTemplateID) (*models.Template, error)
	ListByCompany(ctx context.Context, companyID id.CompanyID) ([]*models.Template, error)
}

// Service manages fee templates and validates proposed fees against them.
type Service struct {
	templates TemplateStore
}

// New constructs the fee template service.
func New(templates TemplateStore) *Service {
	return &Service{templates: templates}
}

// CreateInput carries the fields of a new pricing rule. Amounts are integer
// minor units.
type CreateInput struct {
	Name         string
	DefaultPrice int64
	MinPrice     int64
	MaxPrice     int64
	Currency     string
	Nationality  string
	ServiceType  string
}

// Create adds a pricing rule for the caller's company. Admin only. A rule
// violating min ≤ default ≤ max is rejected with a validation error and
// nothing is persisted.
func (s *Service) Create(ctx context.Context, input CreateInput, identity tenant.Identity) (*models.Template, error) {
	if err := tenant.RequireAdmin(identity); err != nil {
		return nil, err
	}

	tpl, err := models.NewTemplate(
		id.NewFeeTemplateID(),
		identity.CompanyID,
		input.Name,
		input.DefaultPrice,
		input.MinPrice,
		input.MaxPrice,
		input.Currency,
		input.Nationality,
		input.ServiceType,
		requestcontext.Now(ctx),
	)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, err
	}

	if err := s.templates.Create(ctx, tpl); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create fee template")
	}
	return tpl, nil
}

// Get returns one pricing rule of the caller's company.
func (s *Service) Get(ctx context.Context, templateID id.FeeTemplateID, identity tenant.Identity) (*models.Template, error) {
	tpl, err := s.templates.FindByCompanyAndID(ctx, identity.CompanyID, templateID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "fee template not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load fee template")
	}
	return tpl, nil
}

// List returns every pricing rule of the caller's company.
func (s *Service) List(ctx context.Context, identity tenant.Identity) ([]*models.Template, error) {
	templates, err := s.templates.ListByCompany(ctx, identity.CompanyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list fee templates")
	}
	return templates, nil
}

// Validate checks a proposed fee amount against the template's inclusive
// [min, max] range. A nil templateID means the application is priced ad hoc,
// outside the templated catalog, and any non-negative amount is accepted.
func (s *Service) Validate(ctx context.Context, templateID *id.FeeTemplateID, amount int64, identity tenant.Identity) error {
	if amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "fee amount cannot be negative")
	}
	if templateID == nil {
		return nil
	}

	tpl, err := s.templates.FindByCompanyAndID(ctx, identity.CompanyID, *templateID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "fee template not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load fee template")
	}

	if !tpl.Allows(amount) {
		return dErrors.Newf(dErrors.CodeValidation,
			"fee amount must be between %d and %d %s", tpl.MinPrice, tpl.MaxPrice, tpl.Currency)
	}
	return nil
}
