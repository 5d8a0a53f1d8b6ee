// Package service implements the document requirement catalog: the
// tenant-scoped rules describing which documents must be collected at which
// stage, and from whom.
package service

import (
	"context"
	"errors"
	"log/slog"

	appmodels "caseflow/internal/application/models"
	"caseflow/internal/document/models"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/sentinel"
	"caseflow/pkg/requestcontext"
)

// TemplateStore abstracts template persistence.
type TemplateStore interface {
	CreateIfNameAvailable(ctx context.Context, tpl *models.Template) error
	FindByCompanyAndID(ctx context.Context, companyID id.CompanyID, templateID id.DocumentTemplateID) (*models.Template, error)
	ListByCompanyAndStage(ctx context.Context, companyID id.CompanyID, stage appmodels.Stage) ([]*models.Template, error)
	ListByCompany(ctx context.Context, companyID id.CompanyID) ([]*models.Template, error)
	Update(ctx context.Context, companyID id.CompanyID, tpl *models.Template) error
	Delete(ctx context.Context, companyID id.CompanyID, templateID id.DocumentTemplateID) error
}

// Service is the document requirement catalog. Reads are open to any member
// of the tenant; mutation requires the admin role.
type Service struct {
	templates TemplateStore
	logger    *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs the catalog service.
func New(templates TemplateStore, opts ...Option) *Service {
	s := &Service{templates: templates, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInput carries the fields of a new template rule.
type CreateInput struct {
	Stage        appmodels.Stage
	Name         string
	Required     bool
	RequiredFrom appmodels.RequiredFrom
}

// Create adds a template rule for the caller's company. Admin only.
func (s *Service) Create(ctx context.Context, input CreateInput, identity tenant.Identity) (*models.Template, error) {
	if err := tenant.RequireAdmin(identity); err != nil {
		return nil, err
	}

	tpl, err := models.NewTemplate(
		id.NewDocumentTemplateID(),
		identity.CompanyID,
		input.Stage,
		input.Name,
		input.Required,
		input.RequiredFrom,
		requestcontext.Now(ctx),
	)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, err
	}

	if err := s.templates.CreateIfNameAvailable(ctx, tpl); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict,
				"a rule named %q already exists for stage %s", tpl.Name, tpl.Stage)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create document template")
	}
	return tpl, nil
}

// ListForStage is the read path used by the checklist generator: all rules
// for (company, stage) in stable insertion order.
func (s *Service) ListForStage(ctx context.Context, companyID id.CompanyID, stage appmodels.Stage) ([]*models.Template, error) {
	templates, err := s.templates.ListByCompanyAndStage(ctx, companyID, stage)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list document templates")
	}
	return templates, nil
}

// List returns every rule of the caller's company, for the settings screen.
func (s *Service) List(ctx context.Context, identity tenant.Identity) ([]*models.Template, error) {
	templates, err := s.templates.ListByCompany(ctx, identity.CompanyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list document templates")
	}
	return templates, nil
}

// UpdateInput carries the mutable fields of a template rule. Nil means keep.
type UpdateInput struct {
	Stage        *appmodels.Stage
	Name         *string
	Required     *bool
	RequiredFrom *appmodels.RequiredFrom
}

// Update edits a template rule. Admin only. Checklist items already
// materialized from the old rule are left untouched.
func (s *Service) Update(ctx context.Context, templateID id.DocumentTemplateID, input UpdateInput, identity tenant.Identity) (*models.Template, error) {
	if err := tenant.RequireAdmin(identity); err != nil {
		return nil, err
	}

	tpl, err := s.templates.FindByCompanyAndID(ctx, identity.CompanyID, templateID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "document template not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load document template")
	}

	if input.Stage != nil {
		tpl.Stage = *input.Stage
	}
	if input.Name != nil {
		tpl.Name = *input.Name
	}
	if input.Required != nil {
		tpl.Required = *input.Required
	}
	if input.RequiredFrom != nil {
		tpl.RequiredFrom = *input.RequiredFrom
	}
	tpl.UpdatedAt = requestcontext.Now(ctx)

	// Re-run constructor checks against the merged state.
	if _, err := models.NewTemplate(tpl.ID, tpl.CompanyID, tpl.Stage, tpl.Name, tpl.Required, tpl.RequiredFrom, tpl.UpdatedAt); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.templates.Update(ctx, identity.CompanyID, tpl); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict,
				"a rule named %q already exists for stage %s", tpl.Name, tpl.Stage)
		}
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "document template not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update document template")
	}
	return tpl, nil
}

// Delete removes a template rule. Admin only. Existing checklist items remain.
func (s *Service) Delete(ctx context.Context, templateID id.DocumentTemplateID, identity tenant.Identity) error {
	if err := tenant.RequireAdmin(identity); err != nil {
		return err
	}
	if err := s.templates.Delete(ctx, identity.CompanyID, templateID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "document template not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete document template")
	}
	return nil
}
