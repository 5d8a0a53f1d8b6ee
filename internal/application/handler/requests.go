package handler

import (
	"strings"
	"time"

	"caseflow/internal/application/models"
	"caseflow/internal/application/service"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
)

// CreateApplicationRequest is the HTTP request body for POST /applications.
type CreateApplicationRequest struct {
	Type          string  `json:"type"`
	CandidateID   string  `json:"candidate_id"`
	ClientID      string  `json:"client_id"`
	FromClientID  *string `json:"from_client_id,omitempty"`
	BrokerID      *string `json:"broker_id,omitempty"`
	FeeTemplateID *string `json:"fee_template_id,omitempty"`

	LawyerServiceRequested bool   `json:"lawyer_service_requested,omitempty"`
	LawyerFeeCost          *int64 `json:"lawyer_fee_cost,omitempty"`
	LawyerFeeCharge        *int64 `json:"lawyer_fee_charge,omitempty"`

	// Parsed values (populated by Validate)
	parsed service.CreateInput
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CreateApplicationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	appType, err := models.ParseApplicationType(strings.TrimSpace(r.Type))
	if err != nil {
		return err
	}
	r.parsed.Type = appType

	candidateID, err := id.ParseCandidateID(strings.TrimSpace(r.CandidateID))
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "candidate_id must be a valid UUID")
	}
	r.parsed.CandidateID = candidateID

	clientID, err := id.ParseClientID(strings.TrimSpace(r.ClientID))
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "client_id must be a valid UUID")
	}
	r.parsed.ClientID = clientID

	if r.FromClientID != nil {
		fromID, err := id.ParseClientID(strings.TrimSpace(*r.FromClientID))
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "from_client_id must be a valid UUID")
		}
		r.parsed.FromClientID = &fromID
	}
	if r.BrokerID != nil {
		brokerID, err := id.ParseBrokerID(strings.TrimSpace(*r.BrokerID))
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "broker_id must be a valid UUID")
		}
		r.parsed.BrokerID = &brokerID
	}
	if r.FeeTemplateID != nil {
		feeID, err := id.ParseFeeTemplateID(strings.TrimSpace(*r.FeeTemplateID))
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "fee_template_id must be a valid UUID")
		}
		r.parsed.FeeTemplateID = &feeID
	}

	r.parsed.LawyerServiceRequested = r.LawyerServiceRequested
	r.parsed.LawyerFeeCost = r.LawyerFeeCost
	r.parsed.LawyerFeeCharge = r.LawyerFeeCharge
	return nil
}

// ParsedInput returns the validated domain input.
func (r *CreateApplicationRequest) ParsedInput() service.CreateInput {
	return r.parsed
}

// TransitionRequest is the HTTP request body for POST
// /applications/{id}/transition and /applications/{id}/override.
type TransitionRequest struct {
	Stage         string  `json:"stage"`
	EffectiveDate *string `json:"effective_date,omitempty"`

	parsedStage models.Stage
	parsedDate  *time.Time
}

func (r *TransitionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	stage, err := models.ParseStage(strings.TrimSpace(r.Stage))
	if err != nil {
		return err
	}
	r.parsedStage = stage

	if r.EffectiveDate != nil {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(*r.EffectiveDate))
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "effective_date must be YYYY-MM-DD")
		}
		r.parsedDate = &date
	}
	return nil
}

func (r *TransitionRequest) ParsedStage() models.Stage { return r.parsedStage }
func (r *TransitionRequest) ParsedDate() *time.Time    { return r.parsedDate }

// SetFeeRequest is the HTTP request body for PUT /applications/{id}/fee.
type SetFeeRequest struct {
	Amount *int64 `json:"amount"`
}

func (r *SetFeeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Amount == nil {
		return dErrors.New(dErrors.CodeValidation, "amount is required")
	}
	if *r.Amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "amount cannot be negative")
	}
	return nil
}

// UpdateChecklistItemRequest is the HTTP request body for PUT
// /applications/{id}/checklist/{itemID}.
type UpdateChecklistItemRequest struct {
	Status string `json:"status"`

	parsedStatus models.DocumentStatus
}

func (r *UpdateChecklistItemRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	status, err := models.ParseDocumentStatus(strings.TrimSpace(r.Status))
	if err != nil {
		return err
	}
	r.parsedStatus = status
	return nil
}

func (r *UpdateChecklistItemRequest) ParsedStatus() models.DocumentStatus { return r.parsedStatus }
