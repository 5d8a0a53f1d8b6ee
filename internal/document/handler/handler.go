// Package handler wires the document requirement catalog settings endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	appmodels "caseflow/internal/application/models"
	"caseflow/internal/document/models"
	"caseflow/internal/document/service"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/httputil"
	"caseflow/pkg/requestcontext"
)

// Service defines the interface for catalog operations.
type Service interface {
	Create(ctx context.Context, input service.CreateInput, identity tenant.Identity) (*models.Template, error)
	List(ctx context.Context, identity tenant.Identity) ([]*models.Template, error)
	Update(ctx context.Context, templateID id.DocumentTemplateID, input service.UpdateInput, identity tenant.Identity) (*models.Template, error)
	Delete(ctx context.Context, templateID id.DocumentTemplateID, identity tenant.Identity) error
}

// Handler wires catalog settings endpoints to the catalog service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts catalog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/settings/document-templates", h.HandleList)
	r.Post("/settings/document-templates", h.HandleCreate)
	r.Put("/settings/document-templates/{templateID}", h.HandleUpdate)
	r.Delete("/settings/document-templates/{templateID}", h.HandleDelete)
}

// TemplateRequest is the HTTP request body for creating a template rule.
type TemplateRequest struct {
	Stage        string `json:"stage"`
	Name         string `json:"name"`
	Required     *bool  `json:"required"`
	RequiredFrom string `json:"required_from"`

	parsed service.CreateInput
}

func (r *TemplateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	stage, err := appmodels.ParseStage(strings.TrimSpace(r.Stage))
	if err != nil {
		return err
	}
	r.parsed.Stage = stage

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	r.parsed.Name = r.Name

	if r.Required == nil {
		return dErrors.New(dErrors.CodeValidation, "required is required")
	}
	r.parsed.Required = *r.Required

	from, err := appmodels.ParseRequiredFrom(strings.TrimSpace(r.RequiredFrom))
	if err != nil {
		return err
	}
	r.parsed.RequiredFrom = from
	return nil
}

// UpdateTemplateRequest carries partial template edits. Absent fields keep
// their current value.
type UpdateTemplateRequest struct {
	Stage        *string `json:"stage,omitempty"`
	Name         *string `json:"name,omitempty"`
	Required     *bool   `json:"required,omitempty"`
	RequiredFrom *string `json:"required_from,omitempty"`

	parsed service.UpdateInput
}

func (r *UpdateTemplateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Stage != nil {
		stage, err := appmodels.ParseStage(strings.TrimSpace(*r.Stage))
		if err != nil {
			return err
		}
		r.parsed.Stage = &stage
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return dErrors.New(dErrors.CodeValidation, "name cannot be empty")
		}
		r.parsed.Name = &name
	}
	r.parsed.Required = r.Required
	if r.RequiredFrom != nil {
		from, err := appmodels.ParseRequiredFrom(strings.TrimSpace(*r.RequiredFrom))
		if err != nil {
			return err
		}
		r.parsed.RequiredFrom = &from
	}
	return nil
}

// TemplateResponse is the wire shape of a template rule.
type TemplateResponse struct {
	ID           string    `json:"id"`
	Stage        string    `json:"stage"`
	Name         string    `json:"name"`
	Required     bool      `json:"required"`
	RequiredFrom string    `json:"required_from"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func fromTemplate(tpl *models.Template) TemplateResponse {
	return TemplateResponse{
		ID:           tpl.ID.String(),
		Stage:        string(tpl.Stage),
		Name:         tpl.Name,
		Required:     tpl.Required,
		RequiredFrom: string(tpl.RequiredFrom),
		CreatedAt:    tpl.CreatedAt,
		UpdatedAt:    tpl.UpdatedAt,
	}
}

// HandleList handles GET /settings/document-templates.
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

	out := make([]TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, fromTemplate(tpl))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string][]TemplateResponse{"templates": out})
}

// HandleCreate handles POST /settings/document-templates.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[TemplateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	tpl, err := h.service.Create(ctx, req.parsed, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "document template created",
		"request_id", requestID,
		"template_id", tpl.ID.String(),
		"stage", string(tpl.Stage),
	)
	httputil.WriteJSON(w, http.StatusCreated, fromTemplate(tpl))
}

// HandleUpdate handles PUT /settings/document-templates/{templateID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	templateID, err := id.ParseDocumentTemplateID(chi.URLParam(r, "templateID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "template id must be a valid UUID"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateTemplateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	tpl, err := h.service.Update(ctx, templateID, req.parsed, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromTemplate(tpl))
}

// HandleDelete handles DELETE /settings/document-templates/{templateID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	templateID, err := id.ParseDocumentTemplateID(chi.URLParam(r, "templateID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "template id must be a valid UUID"))
		return
	}

	if err := h.service.Delete(ctx, templateID, identity); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
