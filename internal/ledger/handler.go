package ledger

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/httputil"
)

// Handler serves the ledger summary endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the ledger endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/applications/{applicationID}/ledger", h.HandleSummary)
}

// HandleSummary handles GET /applications/{applicationID}/ledger.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := tenant.Resolve(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	appID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "application id must be a valid UUID"))
		return
	}

	summary, err := h.service.Summarize(ctx, appID, identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}
