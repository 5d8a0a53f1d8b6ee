// Package models holds the directory entities applications relate to:
// candidates, client employers, and brokers. Their CRUD surfaces live outside
// the engine; the core needs them for relation ownership checks and for the
// public status-page projection.
package models

import (
	"time"

	appmodels "caseflow/internal/application/models"
	id "caseflow/pkg/domain"
)

// Candidate is a foreign worker tracked by an agency.
type Candidate struct {
	ID          id.CandidateID `json:"id"`
	CompanyID   id.CompanyID   `json:"-"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Nationality string         `json:"nationality,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Client is an employer placing candidates through the agency.
type Client struct {
	ID        id.ClientID  `json:"id"`
	CompanyID id.CompanyID `json:"-"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
}

// Broker is an optional intermediary on an application. Contact details are
// an explicit optional-field struct even where storage stays schemaless.
type Broker struct {
	ID        id.BrokerID              `json:"id"`
	CompanyID id.CompanyID             `json:"-"`
	Name      string                   `json:"name"`
	Contact   appmodels.ContactDetails `json:"contact"`
	CreatedAt time.Time                `json:"created_at"`
}
