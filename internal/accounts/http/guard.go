package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

type ctxKey struct{}

// withCaller stores the resolved caller. u is nil for anonymous requests.
func withCaller(ctx context.Context, u *domain.User) context.Context {
	ctx = context.WithValue(ctx, ctxKey{}, u)
	if u != nil {
		ctx = httpx.WithUserID(ctx, u.PublicID)
	}
	return ctx
}

// callerFromContext returns the caller resolved by a guard, or nil.
func callerFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(ctxKey{}).(*domain.User)
	return u
}

// OptionalIdentity resolves the token when one is usable and lets anonymous
// requests through.
func OptionalIdentity(identity *service.IdentityService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := identity.Optional(r.Context(), httpx.TokenFromRequest(r))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), u)))
		})
	}
}

// RequiredIdentity rejects requests without a token that resolves to an
// existing user.
func RequiredIdentity(identity *service.IdentityService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := identity.Required(r.Context(), httpx.TokenFromRequest(r))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), &u)))
		})
	}
}

// requireCaller is the handler-side check behind RequiredIdentity.
func requireCaller(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	u := callerFromContext(r.Context())
	if u == nil {
		writeServiceError(w, service.ErrTokenMissing)
		return domain.User{}, false
	}
	return *u, true
}
