package http

import (
	"context"
	"net/http"
	"strings"

	"groupfund-backend/internal/policy"
	"groupfund-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "member-claims"

// AuthMiddleware validates the bearer token and stashes the resolved
// caller identity in the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, response{Message: "missing bearer token"})
			return
		}

		claims, err := m.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, response{Message: err.Error()})
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom returns the caller identity stored by AuthMiddleware.
func ClaimsFrom(ctx context.Context) *security.MemberClaims {
	claims, _ := ctx.Value(claimsKey).(*security.MemberClaims)
	return claims
}

// requireOp gates a handler on the capability table. Every protected
// route goes through this single check instead of ad-hoc role guards.
func requireOp(op policy.Operation, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, response{Message: "authentication required"})
			return
		}
		if !policy.Allowed(claims.Role, op) {
			writeJSON(w, http.StatusForbidden, response{Message: "operation not permitted for role " + string(claims.Role)})
			return
		}
		next(w, r)
	}
}
