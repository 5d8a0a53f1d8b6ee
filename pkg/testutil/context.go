package testutil

import (
	"net/http"

	"caseflow/internal/tenant"
	"caseflow/pkg/requestcontext"
)

// WithIdentity attaches a caller identity to the request context.
// This simulates what the auth middleware does for authenticated requests.
func WithIdentity(req *http.Request, identity tenant.Identity) *http.Request {
	return req.WithContext(requestcontext.WithIdentity(req.Context(), identity))
}
