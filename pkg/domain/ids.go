package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Typed ID wrappers for the aggregates in the case-management core.
//
// Each wrapper is a distinct type so that a CandidateID can never be passed
// where a ClientID is expected. Construct from external input via the Parse*
// functions; direct casting bypasses validation and is reserved for stores
// reading trusted rows.
type (
	CompanyID          uuid.UUID
	UserID             uuid.UUID
	ApplicationID      uuid.UUID
	CandidateID        uuid.UUID
	ClientID           uuid.UUID
	BrokerID           uuid.UUID
	FeeTemplateID      uuid.UUID
	DocumentTemplateID uuid.UUID
	ChecklistItemID    uuid.UUID
	PaymentID          uuid.UUID
	CostID             uuid.UUID
)

func parse(s, kind string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", kind, err)
	}
	return u, nil
}

// ParseCompanyID validates and returns a CompanyID.
func ParseCompanyID(s string) (CompanyID, error) {
	u, err := parse(s, "company id")
	return CompanyID(u), err
}

// ParseUserID validates and returns a UserID.
func ParseUserID(s string) (UserID, error) {
	u, err := parse(s, "user id")
	return UserID(u), err
}

// ParseApplicationID validates and returns an ApplicationID.
func ParseApplicationID(s string) (ApplicationID, error) {
	u, err := parse(s, "application id")
	return ApplicationID(u), err
}

// ParseCandidateID validates and returns a CandidateID.
func ParseCandidateID(s string) (CandidateID, error) {
	u, err := parse(s, "candidate id")
	return CandidateID(u), err
}

// ParseClientID validates and returns a ClientID.
func ParseClientID(s string) (ClientID, error) {
	u, err := parse(s, "client id")
	return ClientID(u), err
}

// ParseBrokerID validates and returns a BrokerID.
func ParseBrokerID(s string) (BrokerID, error) {
	u, err := parse(s, "broker id")
	return BrokerID(u), err
}

// ParseFeeTemplateID validates and returns a FeeTemplateID.
func ParseFeeTemplateID(s string) (FeeTemplateID, error) {
	u, err := parse(s, "fee template id")
	return FeeTemplateID(u), err
}

// ParseDocumentTemplateID validates and returns a DocumentTemplateID.
func ParseDocumentTemplateID(s string) (DocumentTemplateID, error) {
	u, err := parse(s, "document template id")
	return DocumentTemplateID(u), err
}

// ParseChecklistItemID validates and returns a ChecklistItemID.
func ParseChecklistItemID(s string) (ChecklistItemID, error) {
	u, err := parse(s, "checklist item id")
	return ChecklistItemID(u), err
}

// ParsePaymentID validates and returns a PaymentID.
func ParsePaymentID(s string) (PaymentID, error) {
	u, err := parse(s, "payment id")
	return PaymentID(u), err
}

// ParseCostID validates and returns a CostID.
func ParseCostID(s string) (CostID, error) {
	u, err := parse(s, "cost id")
	return CostID(u), err
}

func (id CompanyID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool             { return uuid.UUID(id) == uuid.Nil }
func (id ApplicationID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id CandidateID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id ClientID) IsNil() bool           { return uuid.UUID(id) == uuid.Nil }
func (id BrokerID) IsNil() bool           { return uuid.UUID(id) == uuid.Nil }
func (id FeeTemplateID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id DocumentTemplateID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ChecklistItemID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id PaymentID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id CostID) IsNil() bool             { return uuid.UUID(id) == uuid.Nil }

func (id CompanyID) String() string          { return uuid.UUID(id).String() }
func (id UserID) String() string             { return uuid.UUID(id).String() }
func (id ApplicationID) String() string      { return uuid.UUID(id).String() }
func (id CandidateID) String() string        { return uuid.UUID(id).String() }
func (id ClientID) String() string           { return uuid.UUID(id).String() }
func (id BrokerID) String() string           { return uuid.UUID(id).String() }
func (id FeeTemplateID) String() string      { return uuid.UUID(id).String() }
func (id DocumentTemplateID) String() string { return uuid.UUID(id).String() }
func (id ChecklistItemID) String() string    { return uuid.UUID(id).String() }
func (id PaymentID) String() string          { return uuid.UUID(id).String() }
func (id CostID) String() string             { return uuid.UUID(id).String() }

// NewCompanyID generates a fresh CompanyID.
func NewCompanyID() CompanyID { return CompanyID(uuid.New()) }

// NewApplicationID generates a fresh ApplicationID.
func NewApplicationID() ApplicationID { return ApplicationID(uuid.New()) }

// NewChecklistItemID generates a fresh ChecklistItemID.
func NewChecklistItemID() ChecklistItemID { return ChecklistItemID(uuid.New()) }

// NewDocumentTemplateID generates a fresh DocumentTemplateID.
func NewDocumentTemplateID() DocumentTemplateID { return DocumentTemplateID(uuid.New()) }

// NewFeeTemplateID generates a fresh FeeTemplateID.
func NewFeeTemplateID() FeeTemplateID { return FeeTemplateID(uuid.New()) }

// NewUserID generates a fresh UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewCandidateID generates a fresh CandidateID.
func NewCandidateID() CandidateID { return CandidateID(uuid.New()) }

// NewClientID generates a fresh ClientID.
func NewClientID() ClientID { return ClientID(uuid.New()) }

// NewBrokerID generates a fresh BrokerID.
func NewBrokerID() BrokerID { return BrokerID(uuid.New()) }

// NewPaymentID generates a fresh PaymentID.
func NewPaymentID() PaymentID { return PaymentID(uuid.New()) }

// NewCostID generates a fresh CostID.
func NewCostID() CostID { return CostID(uuid.New()) }
