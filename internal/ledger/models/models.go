// Package models holds the financial rows tied to an application: payments
// collected from the client and costs incurred by the office.
package models

import (
	"time"

	id "caseflow/pkg/domain"
)

// Payment is money received against an application. Amounts are integer
// minor units.
type Payment struct {
	ID            id.PaymentID     `json:"id"`
	ApplicationID id.ApplicationID `json:"application_id"`
	Amount        int64            `json:"amount"`
	Currency      string           `json:"currency"`
	Note          string           `json:"note,omitempty"`
	ReceivedAt    time.Time        `json:"received_at"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Cost is money the office spent processing an application. Costs are
// internal: staff never see them.
type Cost struct {
	ID            id.CostID        `json:"id"`
	ApplicationID id.ApplicationID `json:"application_id"`
	Amount        int64            `json:"amount"`
	Currency      string           `json:"currency"`
	Category      string           `json:"category,omitempty"`
	IncurredAt    time.Time        `json:"incurred_at"`
	CreatedAt     time.Time        `json:"created_at"`
}
