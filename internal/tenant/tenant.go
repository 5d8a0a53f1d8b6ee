// Package tenant resolves the calling user's company identity and role.
//
// Every other component receives the resolved Identity as an input parameter
// rather than discovering it itself; this keeps the core testable without a
// real session layer and makes omission of the tenant filter a compile-time
// impossibility rather than a per-call discipline.
package tenant

import (
	"context"

	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/requestcontext"
)

// Identity is the caller's resolved tenant identity: who they are, which
// company partitions their data, and which role gates elevated operations.
type Identity = requestcontext.CallerIdentity

// Resolve returns the caller identity placed in context by the auth
// middleware. Returns CodeUnauthorized when no caller is present; the session
// mechanics that populate the context are out of scope here.
func Resolve(ctx context.Context) (Identity, error) {
	identity, ok := requestcontext.Identity(ctx)
	if !ok {
		return Identity{}, dErrors.New(dErrors.CodeUnauthorized, "no authenticated caller")
	}
	if identity.CompanyID.IsNil() {
		return Identity{}, dErrors.New(dErrors.CodeUnauthorized, "caller has no company")
	}
	return identity, nil
}

// RequireAdmin enforces the elevated role for role-gated operations
// (template/catalog mutation, cost visibility, stage overrides).
func RequireAdmin(identity Identity) error {
	if !identity.IsAdmin() {
		return dErrors.New(dErrors.CodeForbidden, "operation requires admin role")
	}
	return nil
}
