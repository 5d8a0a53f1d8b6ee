package handler

import (
	"time"

	"caseflow/internal/application/models"
)

// ApplicationResponse is the wire shape of an application.
type ApplicationResponse struct {
	ID            string  `json:"id"`
	ShareableLink string  `json:"shareable_link"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	CandidateID   string  `json:"candidate_id"`
	ClientID      string  `json:"client_id"`
	FromClientID  *string `json:"from_client_id,omitempty"`
	BrokerID      *string `json:"broker_id,omitempty"`
	FeeTemplateID *string `json:"fee_template_id,omitempty"`

	FinalFeeAmount *int64 `json:"final_fee_amount,omitempty"`

	LawyerServiceRequested bool   `json:"lawyer_service_requested"`
	LawyerFeeCost          *int64 `json:"lawyer_fee_cost,omitempty"`
	LawyerFeeCharge        *int64 `json:"lawyer_fee_charge,omitempty"`

	ExactArrivalDate    *string `json:"exact_arrival_date,omitempty"`
	PermitExpiryDate    *string `json:"permit_expiry_date,omitempty"`
	LabourPermitDate    *string `json:"labour_permit_date,omitempty"`
	ResidencyPermitDate *string `json:"residency_permit_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChecklistItemResponse is the wire shape of a checklist item.
type ChecklistItemResponse struct {
	ID           string    `json:"id"`
	DocumentName string    `json:"document_name"`
	Status       string    `json:"status"`
	Stage        string    `json:"stage"`
	RequiredFrom string    `json:"required_from"`
	Required     bool      `json:"required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ApplicationDetailResponse bundles an application with its checklist.
type ApplicationDetailResponse struct {
	Application ApplicationResponse     `json:"application"`
	Checklist   []ChecklistItemResponse `json:"checklist"`
}

// ApplicationListResponse is the wire shape of GET /applications.
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

func fromApplication(app *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:                     app.ID.String(),
		ShareableLink:          app.ShareableLink,
		Status:                 string(app.Status),
		Type:                   string(app.Type),
		CandidateID:            app.CandidateID.String(),
		ClientID:               app.ClientID.String(),
		FinalFeeAmount:         app.FinalFeeAmount,
		LawyerServiceRequested: app.LawyerServiceRequested,
		LawyerFeeCost:          app.LawyerFeeCost,
		LawyerFeeCharge:        app.LawyerFeeCharge,
		ExactArrivalDate:       formatDate(app.ExactArrivalDate),
		PermitExpiryDate:       formatDate(app.PermitExpiryDate),
		LabourPermitDate:       formatDate(app.LabourPermitDate),
		ResidencyPermitDate:    formatDate(app.ResidencyPermitDate),
		CreatedAt:              app.CreatedAt,
		UpdatedAt:              app.UpdatedAt,
	}
	if app.FromClientID != nil {
		s := app.FromClientID.String()
		resp.FromClientID = &s
	}
	if app.BrokerID != nil {
		s := app.BrokerID.String()
		resp.BrokerID = &s
	}
	if app.FeeTemplateID != nil {
		s := app.FeeTemplateID.String()
		resp.FeeTemplateID = &s
	}
	return resp
}

func fromChecklist(items []*models.ChecklistItem) []ChecklistItemResponse {
	out := make([]ChecklistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ChecklistItemResponse{
			ID:           item.ID.String(),
			DocumentName: item.DocumentName,
			Status:       string(item.Status),
			Stage:        string(item.Stage),
			RequiredFrom: string(item.RequiredFrom),
			Required:     item.Required,
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		})
	}
	return out
}

func fromApplications(apps []*models.Application) ApplicationListResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, fromApplication(app))
	}
	return ApplicationListResponse{Applications: out}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
