package models

import (
	"strings"
	"time"

	appmodels "caseflow/internal/application/models"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
)

// Template is a tenant-defined rule: at stage S, from {office|client}, the
// document named N is {required|optional}.
//
// Invariants:
//   - Name is non-empty and at most 200 characters
//   - (CompanyID, Stage, Name) is unique; a duplicate rule is a
//     data-integrity bug, not a feature
//   - Mutation is restricted to tenant administrators
type Template struct {
	ID           id.DocumentTemplateID  `json:"id"`
	CompanyID    id.CompanyID           `json:"-"`
	Stage        appmodels.Stage        `json:"stage"`
	Name         string                 `json:"name"`
	Required     bool                   `json:"required"`
	RequiredFrom appmodels.RequiredFrom `json:"required_from"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// NewTemplate constructs a Template, validating its invariants.
func NewTemplate(
	templateID id.DocumentTemplateID,
	companyID id.CompanyID,
	stage appmodels.Stage,
	name string,
	required bool,
	requiredFrom appmodels.RequiredFrom,
	now time.Time,
) (*Template, error) {
	name = strings.TrimSpace(name)
	if companyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "template requires a company")
	}
	if !stage.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid stage")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "document name cannot be empty")
	}
	if len(name) > 200 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "document name must be 200 characters or less")
	}
	if !requiredFrom.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid required_from")
	}
	return &Template{
		ID:           templateID,
		CompanyID:    companyID,
		Stage:        stage,
		Name:         name,
		Required:     required,
		RequiredFrom: requiredFrom,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
