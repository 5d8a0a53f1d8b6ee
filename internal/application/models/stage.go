package models

import dErrors "caseflow/pkg/domain-errors"

// Stage is a named point in an application's processing pipeline.
//
// The string values are persisted and exposed on the wire; they must never
// change, for backward compatibility with existing rows.
type Stage string

// Happy-path stages, in processing order.
const (
	StagePendingMOL                Stage = "PENDING_MOL"
	StageMOLAuthReceived           Stage = "MOL_AUTH_RECEIVED"
	StageVisaProcessing            Stage = "VISA_PROCESSING"
	StageVisaReceived              Stage = "VISA_RECEIVED"
	StageWorkerArrived             Stage = "WORKER_ARRIVED"
	StageLabourPermitProcessing    Stage = "LABOUR_PERMIT_PROCESSING"
	StageResidencyPermitProcessing Stage = "RESIDENCY_PERMIT_PROCESSING"
	StageActiveEmployment          Stage = "ACTIVE_EMPLOYMENT"
	StageContractEnded             Stage = "CONTRACT_ENDED"
)

// Side states.
const (
	// StageRenewalPending is re-enterable from ACTIVE_EMPLOYMENT.
	StageRenewalPending Stage = "RENEWAL_PENDING"

	// Terminal cancellation variants, reachable from any non-terminal stage.
	StageCancelledPreArrival  Stage = "CANCELLED_PRE_ARRIVAL"
	StageCancelledPostArrival Stage = "CANCELLED_POST_ARRIVAL"
	StageCancelledCandidate   Stage = "CANCELLED_CANDIDATE"
)

// happyPathOrder defines the forward ordering of the happy-path pipeline.
// Side states are deliberately absent; their reachability is expressed in
// CanAdvanceTo rather than by position.
var happyPathOrder = map[Stage]int{
	StagePendingMOL:                1,
	StageMOLAuthReceived:           2,
	StageVisaProcessing:            3,
	StageVisaReceived:              4,
	StageWorkerArrived:             5,
	StageLabourPermitProcessing:    6,
	StageResidencyPermitProcessing: 7,
	StageActiveEmployment:          8,
	StageContractEnded:             9,
}

var validStages = map[Stage]bool{
	StagePendingMOL:                true,
	StageMOLAuthReceived:           true,
	StageVisaProcessing:            true,
	StageVisaReceived:              true,
	StageWorkerArrived:             true,
	StageLabourPermitProcessing:    true,
	StageResidencyPermitProcessing: true,
	StageActiveEmployment:          true,
	StageContractEnded:             true,
	StageRenewalPending:            true,
	StageCancelledPreArrival:       true,
	StageCancelledPostArrival:      true,
	StageCancelledCandidate:        true,
}

// ParseStage constructs a Stage from external input.
func ParseStage(s string) (Stage, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "stage cannot be empty")
	}
	st := Stage(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown stage")
	}
	return st, nil
}

// IsValid checks if the stage is one of the supported enum values.
func (s Stage) IsValid() bool {
	return validStages[s]
}

// IsCancellation reports whether the stage is one of the cancellation
// variants.
func (s Stage) IsCancellation() bool {
	switch s {
	case StageCancelledPreArrival, StageCancelledPostArrival, StageCancelledCandidate:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave the stage.
func (s Stage) IsTerminal() bool {
	return s == StageContractEnded || s.IsCancellation()
}

// CanAdvanceTo reports whether next is a legal target for the normal advance
// operation from s:
//
//   - the immediate forward neighbour on the happy path
//   - ACTIVE_EMPLOYMENT ↔ RENEWAL_PENDING (renewals are re-enterable)
//   - any cancellation variant, from any non-terminal stage
//
// Stage-skipping is not covered here; it is only reachable through the
// explicit override operation.
func (s Stage) CanAdvanceTo(next Stage) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}
	if next.IsCancellation() {
		return true
	}
	if s == StageActiveEmployment && next == StageRenewalPending {
		return true
	}
	if s == StageRenewalPending && next == StageActiveEmployment {
		return true
	}
	from, okFrom := happyPathOrder[s]
	to, okTo := happyPathOrder[next]
	return okFrom && okTo && to == from+1
}

func (s Stage) String() string {
	return string(s)
}
