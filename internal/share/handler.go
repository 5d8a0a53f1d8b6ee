package share

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"caseflow/pkg/platform/httputil"
)

// Handler serves the public shareable-link endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the public endpoint. No authentication middleware; the
// token is the credential.
func (h *Handler) Register(r chi.Router) {
	r.Get("/share/{link}", h.HandleResolve)
}

// HandleResolve handles GET /share/{link}.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	proj, err := h.service.Resolve(r.Context(), chi.URLParam(r, "link"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, proj)
}
