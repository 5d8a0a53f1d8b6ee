// Package middleware holds the HTTP middleware chain: request IDs,
// authentication, and panic recovery.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	jwttoken "caseflow/internal/jwt_token"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/httputil"
	"caseflow/pkg/requestcontext"
)

// TokenValidator validates a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwttoken.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and puts the
// caller identity into the request context for tenant.Resolve.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", requestID,
					"error", err,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token"))
				return
			}

			identity, err := identityFromClaims(claims)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - malformed claims",
					"request_id", requestID,
					"error", err,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithIdentity(ctx, identity)))
		})
	}
}

func identityFromClaims(claims *jwttoken.Claims) (requestcontext.CallerIdentity, error) {
	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return requestcontext.CallerIdentity{}, err
	}
	companyID, err := id.ParseCompanyID(claims.CompanyID)
	if err != nil {
		return requestcontext.CallerIdentity{}, err
	}
	role, err := id.ParseRole(claims.Role)
	if err != nil {
		return requestcontext.CallerIdentity{}, err
	}
	return requestcontext.CallerIdentity{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}, nil
}
