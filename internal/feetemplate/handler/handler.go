// Package handler wires the fee template settings endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"caseflow/internal/feetemplate/models"
	"caseflow/internal/feetemplate/service"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/httputil"
	"caseflow/pkg/requestcontext"
)

// Service defines the interface for fee template operations.
type Service interface {
	Create(ctx context.Context, input service.CreateInput, identity tenant.Identity) (*models.Template, error)
	Get(ctx context.Context, templateID id.FeeTemplateID, identity tenant.Identity) (*models.Template, error)
	List(ctx context.Context, identity tenant.Identity) ([]*models.Template, error)
}

// Handler wires fee template endpoints to the fee template service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts fee template endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/settings/fee-templates", h.HandleList)
	r.Post("/settings/fee-templates", h.HandleCreate)
	r.Get("/settings/fee-templates/{templateID}", h.HandleGet)
}

// FeeTemplateRequest is the HTTP request body for creating a pricing rule.
// Amounts are integer minor units.
type FeeTemplateRequest struct {
	Name         string `json:"name"`
	DefaultPrice *int64 `json:"default_price"`
	MinPrice     *int64 `json:"min_price"`
	MaxPrice     *int64 `json:"max_price"`
	Currency     string `json:"currency"`
	Nationality  string `json:"nationality,omitempty"`
	ServiceType  string `json:"service_type,omitempty"`

	parsed service.CreateInput
}

func (r *FeeTemplateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.DefaultPrice == nil || r.MinPrice == nil || r.MaxPrice == nil {
		return dErrors.New(dErrors.CodeValidation, "default_price, min_price and max_price are required")
	}
	if strings.TrimSpace(r.Currency) == "" {
		return dErrors.New(dErrors.CodeValidation, "currency is required")
	}

	r.parsed = service.CreateInput{
		Name:         r.Name,
		DefaultPrice: *r.DefaultPrice,
		MinPrice:     *r.MinPrice,
		MaxPrice:     *r.MaxPrice,
		Currency:     r.Currency,
		Nationality:  strings.TrimSpace(r.Nationality),
		ServiceType:  strings.TrimSpace(r.ServiceType),
	}
	return nil
}

// FeeTemplateResponse is the wire shape of a pricing rule.
type FeeTemplateResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DefaultPrice int64     `json:"default_price"`
	MinPrice     int64     `json:"min_price"`
	MaxPrice     int64     `json:"max_price"`
	Currency     string    `json:"currency"`
	Nationality  string    `json:"nationality,omitempty"`
	ServiceType  string    `json:"service_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func fromTemplate(tpl *models.Template) FeeTemplateResponse {
	return FeeTemplateResponse{
		ID:           tpl.ID.String(),
		Name:         tpl.Name,
		DefaultPrice: tpl.DefaultPrice,
		MinPrice:     tpl.MinPrice,
		MaxPrice:     tpl.MaxPrice,
		Currency:     tpl.Currency,
		Nationality:  tpl.Nationality,
		ServiceType:  tpl.ServiceType,
		CreatedAt:    tpl.CreatedAt,
		UpdatedAt:    tpl.UpdatedAt,
	}
}

// HandleList handles GET /settings/fee-templates.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	templates, err := h.service.List(ctx, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	out := make([]FeeTemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, fromTemplate(tpl))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string][]FeeTemplateResponse{"templates": out})
}

// HandleCreate handles POST /settings/fee-templates.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[FeeTemplateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	tpl, err := h.service.Create(ctx, req.parsed, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "fee template created",
		"request_id", requestID,
		"template_id", tpl.ID.String(),
	)
	httputil.WriteJSON(w, http.StatusCreated, fromTemplate(tpl))
}

// HandleGet handles GET /settings/fee-templates/{templateID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	templateID, err := id.ParseFeeTemplateID(chi.URLParam(r, "templateID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "template id must be a valid UUID"))
		return
	}

	tpl, err := h.service.Get(ctx, templateID, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromTemplate(tpl))
}
