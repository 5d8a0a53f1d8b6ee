package models

import (
	"time"

	id "caseflow/pkg/domain"
)

// ChecklistItem is the materialized, per-application instance of a document
// template rule.
//
// Invariants:
//   - (ApplicationID, DocumentName, Stage) is unique; the generator relies on
//     this for idempotence
//   - Stage records the stage at which the item became required and never
//     changes, even after the application moves on
//   - Items for passed stages are never regenerated or deleted by transitions
type ChecklistItem struct {
	ID            id.ChecklistItemID `json:"id"`
	ApplicationID id.ApplicationID   `json:"application_id"`
	DocumentName  string             `json:"document_name"`
	Status        DocumentStatus     `json:"status"`
	Stage         Stage              `json:"stage"`
	RequiredFrom  RequiredFrom       `json:"required_from"`
	Required      bool               `json:"required"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
