// Package audit captures lifecycle actions on applications as append-only
// events. The engine emits them; presentation of the trail is someone else's
// problem.
package audit

import (
	"context"
	"time"

	id "caseflow/pkg/domain"
)

// Action identifies what happened to an application.
type Action string

const (
	ActionCreated    Action = "application.created"
	ActionTransition Action = "application.transitioned"
	ActionOverride   Action = "application.stage_overridden"
	ActionDeleted    Action = "application.deleted"
	ActionFeeSet     Action = "application.fee_set"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp     time.Time
	CompanyID     id.CompanyID
	ActorID       id.UserID
	ApplicationID id.ApplicationID
	Action        Action
	Detail        string
}

// Store is the append-only sink events land in.
type Store interface {
	Append(ctx context.Context, event Event) error
}
