package models

import (
	"time"

	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
)

// Application is the aggregate root for one case: one candidate placed at one
// client employer.
//
// Invariants:
//   - CandidateID and ClientID are set
//   - GUARANTOR_CHANGE applications carry FromClientID; NEW_CANDIDATE must not
//   - CompanyID equals the CompanyID of the candidate, client, and (if set)
//     fee template; the service rejects cross-tenant relations before rows
//     are written
//   - ShareableLink is assigned at creation and immutable afterwards
//   - Status transitions go through Advance/ApplyOverride, never by direct
//     assignment outside this package
//   - Lawyer fee fields are only meaningful when LawyerServiceRequested
type Application struct {
	ID            id.ApplicationID `json:"id"`
	CompanyID     id.CompanyID     `json:"-"`
	ShareableLink string           `json:"shareable_link"`

	Status Stage           `json:"status"`
	Type   ApplicationType `json:"type"`

	CandidateID   id.CandidateID    `json:"candidate_id"`
	ClientID      id.ClientID       `json:"client_id"`
	FromClientID  *id.ClientID      `json:"from_client_id,omitempty"`
	BrokerID      *id.BrokerID      `json:"broker_id,omitempty"`
	FeeTemplateID *id.FeeTemplateID `json:"fee_template_id,omitempty"`

	// Amounts are integer minor units (cents) in the template's currency.
	FinalFeeAmount         *int64 `json:"final_fee_amount,omitempty"`
	LawyerServiceRequested bool   `json:"lawyer_service_requested"`
	LawyerFeeCost          *int64 `json:"lawyer_fee_cost,omitempty"`
	LawyerFeeCharge        *int64 `json:"lawyer_fee_charge,omitempty"`

	// Each date is meaningful only once the corresponding stage is reached.
	ExactArrivalDate    *time.Time `json:"exact_arrival_date,omitempty"`
	PermitExpiryDate    *time.Time `json:"permit_expiry_date,omitempty"`
	LabourPermitDate    *time.Time `json:"labour_permit_date,omitempty"`
	ResidencyPermitDate *time.Time `json:"residency_permit_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewApplication constructs an Application at the initial stage with a fresh
// shareable link. Relation ownership is checked at the service layer, which
// can see the referenced rows.
func NewApplication(
	appID id.ApplicationID,
	companyID id.CompanyID,
	appType ApplicationType,
	candidateID id.CandidateID,
	clientID id.ClientID,
	shareableLink string,
	now time.Time,
) (*Application, error) {
	if companyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "application requires a company")
	}
	if !appType.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid application type")
	}
	if candidateID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "application requires a candidate")
	}
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "application requires a client")
	}
	if len(shareableLink) < MinShareableLinkLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "shareable link is too short")
	}
	return &Application{
		ID:            appID,
		CompanyID:     companyID,
		ShareableLink: shareableLink,
		Status:        StagePendingMOL,
		Type:          appType,
		CandidateID:   candidateID,
		ClientID:      clientID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CanAdvance checks whether the normal advance operation may move the
// application to next. Use with ApplyAdvance inside the transaction callback.
func (a *Application) CanAdvance(next Stage) error {
	if a.Status.IsTerminal() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "application is in terminal stage %s", a.Status)
	}
	if !a.Status.CanAdvanceTo(next) {
		return dErrors.Newf(dErrors.CodeValidation,
			"cannot advance from %s to %s; use an override to skip stages", a.Status, next)
	}
	return nil
}

// ApplyAdvance moves the application to next. Call CanAdvance first.
func (a *Application) ApplyAdvance(next Stage, now time.Time) {
	a.Status = next
	a.UpdatedAt = now
}

// Advance validates and applies a normal transition in one call.
func (a *Application) Advance(next Stage, now time.Time) error {
	if err := a.CanAdvance(next); err != nil {
		return err
	}
	a.ApplyAdvance(next, now)
	return nil
}

// CanOverride checks whether the explicit override operation may move the
// application to next. Overrides skip the adjacency rule but never leave a
// terminal stage or target an unknown one.
func (a *Application) CanOverride(next Stage) error {
	if !next.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown stage")
	}
	if a.Status.IsTerminal() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "application is in terminal stage %s", a.Status)
	}
	return nil
}

// ApplyOverride moves the application to next. Call CanOverride first.
func (a *Application) ApplyOverride(next Stage, now time.Time) {
	a.Status = next
	a.UpdatedAt = now
}

// SetFinalFee records the agreed fee. Range checks against the fee template
// happen at the service layer where the template is available.
func (a *Application) SetFinalFee(amount int64, now time.Time) error {
	if amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "fee amount cannot be negative")
	}
	a.FinalFeeAmount = &amount
	a.UpdatedAt = now
	return nil
}

// ContactDetails is the explicit optional-field shape for broker or agent
// contact info. Storage may remain schemaless; the boundary type is not.
type ContactDetails struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}
