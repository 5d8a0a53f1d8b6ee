// Package http assembles the route tree: authenticated case-management
// endpoints, the public share endpoint, and the operational endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apphandler "caseflow/internal/application/handler"
	dochandler "caseflow/internal/document/handler"
	feehandler "caseflow/internal/feetemplate/handler"
	"caseflow/internal/ledger"
	"caseflow/internal/platform/metrics"
	"caseflow/internal/platform/middleware"
	"caseflow/internal/share"
)

// Deps carries everything the router mounts.
type Deps struct {
	Applications *apphandler.Handler
	Documents    *dochandler.Handler
	FeeTemplates *feehandler.Handler
	Ledger       *ledger.Handler
	Share        *share.Handler

	TokenValidator middleware.TokenValidator
	ShareLimiter   middleware.Limiter
	HTTPMetrics    *metrics.Metrics
	Logger         *slog.Logger
}

// New builds the full router.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public: the shareable link is the credential, so the endpoint is rate
	// limited per client IP to slow token guessing.
	r.Group(func(r chi.Router) {
		if deps.ShareLimiter != nil {
			r.Use(middleware.RateLimit(deps.ShareLimiter, deps.Logger))
		}
		deps.Share.Register(r)
	})

	// Everything else requires a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.TokenValidator, deps.Logger))
		deps.Applications.Register(r)
		deps.Ledger.Register(r)
		deps.Documents.Register(r)
		deps.FeeTemplates.Register(r)
	})

	return r
}
