// Package handler wires the application lifecycle endpoints to the service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caseflow/internal/application/models"
	"caseflow/internal/application/service"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/httputil"
	"caseflow/pkg/requestcontext"
)

// Service defines the interface for application lifecycle operations.
type Service interface {
	Create(ctx context.Context, input service.CreateInput, identity tenant.Identity) (*models.Application, []*models.ChecklistItem, error)
	Get(ctx context.Context, appID id.ApplicationID, identity tenant.Identity) (*models.Application, []*models.ChecklistItem, error)
	List(ctx context.Context, identity tenant.Identity) ([]*models.Application, error)
	Transition(ctx context.Context, appID id.ApplicationID, next models.Stage, effectiveDate *time.Time, identity tenant.Identity) (*models.Application, error)
	Override(ctx context.Context, appID id.ApplicationID, next models.Stage, identity tenant.Identity) (*models.Application, error)
	Delete(ctx context.Context, appID id.ApplicationID, identity tenant.Identity) error
	SetFinalFee(ctx context.Context, appID id.ApplicationID, amount int64, identity tenant.Identity) (*models.Application, error)
	UpdateChecklistItem(ctx context.Context, appID id.ApplicationID, itemID id.ChecklistItemID, status models.DocumentStatus, identity tenant.Identity) error
}

// Handler wires application endpoints to the lifecycle service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an application handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts application endpoints on the router. The router is expected
// to already carry the authentication middleware.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications", h.HandleCreate)
	r.Get("/applications", h.HandleList)
	r.Get("/applications/{applicationID}", h.HandleGet)
	r.Delete("/applications/{applicationID}", h.HandleDelete)
	r.Post("/applications/{applicationID}/transition", h.HandleTransition)
	r.Post("/applications/{applicationID}/override", h.HandleOverride)
	r.Put("/applications/{applicationID}/fee", h.HandleSetFee)
	r.Put("/applications/{applicationID}/checklist/{itemID}", h.HandleUpdateChecklistItem)
}

// HandleCreate handles POST /applications requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateApplicationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	app, items, err := h.service.Create(ctx, req.ParsedInput(), identity)
	if err != nil {
		h.logger.ErrorContext(ctx, "application creation failed",
			"request_id", requestID,
			"company_id", identity.CompanyID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application created",
		"request_id", requestID,
		"application_id", app.ID.String(),
		"company_id", identity.CompanyID.String(),
		"checklist_items", len(items),
	)
	httputil.WriteJSON(w, http.StatusCreated, ApplicationDetailResponse{
		Application: fromApplication(app),
		Checklist:   fromChecklist(items),
	})
}

// HandleList handles GET /applications requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	apps, err := h.service.List(ctx, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromApplications(apps))
}

// HandleGet handles GET /applications/{applicationID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	appID, ok := h.pathApplicationID(w, r)
	if !ok {
		return
	}

	app, items, err := h.service.Get(ctx, appID, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ApplicationDetailResponse{
		Application: fromApplication(app),
		Checklist:   fromChecklist(items),
	})
}

// HandleDelete handles DELETE /applications/{applicationID} requests.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	appID, ok := h.pathApplicationID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, appID, identity); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application deleted",
		"request_id", requestID,
		"application_id", appID.String(),
		"company_id", identity.CompanyID.String(),
	)
	w.WriteHeader(http.StatusNoContent)
}

// HandleTransition handles POST /applications/{applicationID}/transition.
func (h *Handler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	appID, ok := h.pathApplicationID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[TransitionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	app, err := h.service.Transition(ctx, appID, req.ParsedStage(), req.ParsedDate(), identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application transitioned",
		"request_id", requestID,
		"application_id", appID.String(),
		"to_stage", string(app.Status),
	)
	httputil.WriteJSON(w, http.StatusOK, fromApplication(app))
}

// HandleOverride handles POST /applications/{applicationID}/override.
// Same body as transition, but skips the adjacency rule. Admin only.
func (h *Handler) HandleOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	appID, ok := h.pathApplicationID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[TransitionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	app, err := h.service.Override(ctx, appID, req.ParsedStage(), identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromApplication(app))
}

// HandleSetFee handles PUT /applications/{applicationID}/fee.
func (h *Handler) HandleSetFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	appID, ok := h.pathApplicationID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[SetFeeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	app, err := h.service.SetFinalFee(ctx, appID, *req.Amount, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromApplication(app))
}

// HandleUpdateChecklistItem handles PUT
// /applications/{applicationID}/checklist/{itemID}.
func (h *Handler) HandleUpdateChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	appID, ok := h.pathApplicationID(w, r)
	if !ok {
		return
	}
	itemID, err := id.ParseChecklistItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "item id must be a valid UUID"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateChecklistItemRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.UpdateChecklistItem(ctx, appID, itemID, req.ParsedStatus(), identity); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathApplicationID(w http.ResponseWriter, r *http.Request) (id.ApplicationID, bool) {
	appID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "application id must be a valid UUID"))
		return id.ApplicationID{}, false
	}
	return appID, true
}
