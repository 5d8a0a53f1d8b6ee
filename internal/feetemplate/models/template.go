package models

import (
	"strings"
	"time"

	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
)

// Template is a tenant-defined pricing rule. Amounts are integer minor units
// (cents) in Currency.
//
// Invariants:
//   - Name is non-empty and at most 128 characters
//   - 0 ≤ MinPrice ≤ DefaultPrice ≤ MaxPrice
//   - Currency is a 3-letter code
//
// The range invariant is enforced at creation, never retroactively against
// applications that already priced off an older version of the rule.
type Template struct {
	ID           id.FeeTemplateID `json:"id"`
	CompanyID    id.CompanyID     `json:"-"`
	Name         string           `json:"name"`
	DefaultPrice int64            `json:"default_price"`
	MinPrice     int64            `json:"min_price"`
	MaxPrice     int64            `json:"max_price"`
	Currency     string           `json:"currency"`

	// Optional scoping: empty means the rule applies regardless.
	Nationality string `json:"nationality,omitempty"`
	ServiceType string `json:"service_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTemplate constructs a fee Template, validating its invariants.
func NewTemplate(
	templateID id.FeeTemplateID,
	companyID id.CompanyID,
	name string,
	defaultPrice, minPrice, maxPrice int64,
	currency string,
	nationality, serviceType string,
	now time.Time,
) (*Template, error) {
	name = strings.TrimSpace(name)
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if companyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "fee template requires a company")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "fee template name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "fee template name must be 128 characters or less")
	}
	if minPrice < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "min price cannot be negative")
	}
	if minPrice > maxPrice {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "min price cannot exceed max price")
	}
	if defaultPrice < minPrice || defaultPrice > maxPrice {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "default price must lie within [min price, max price]")
	}
	if len(currency) != 3 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "currency must be a 3-letter code")
	}
	return &Template{
		ID:           templateID,
		CompanyID:    companyID,
		Name:         name,
		DefaultPrice: defaultPrice,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Currency:     currency,
		Nationality:  strings.TrimSpace(nationality),
		ServiceType:  strings.TrimSpace(serviceType),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Allows reports whether amount falls within the template's inclusive
// [MinPrice, MaxPrice] range.
func (t *Template) Allows(amount int64) bool {
	return amount >= t.MinPrice && amount <= t.MaxPrice
}
