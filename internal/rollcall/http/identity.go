package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

type identityKey struct{}

// identityFromContext returns the resolved caller. Only set on routes behind
// identityMiddleware.
func identityFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(identityKey{}).(domain.User)
	return user, ok
}

// identityMiddleware re-resolves the token subject against the store, so a
// deleted account's still-valid token stops working immediately.
func identityMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
			if !ok || userID == "" {
				rollcallsdk.ErrUnauthenticated.WriteError(w)
				return
			}

			user, err := auth.GetUserByID(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					rollcallsdk.ErrUnauthenticated.WithMessage("account no longer exists").WriteError(w)
					return
				}
				slogx.FromContext(ctx).Error("failed to resolve identity", "err", err)
				rollcallsdk.ErrServerError.WriteError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, identityKey{}, user)))
		})
	}
}

// requireAdmin runs after identityMiddleware and rejects non-admin callers.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := identityFromContext(r.Context())
		if !ok {
			rollcallsdk.ErrUnauthenticated.WriteError(w)
			return
		}
		if user.Role != domain.RoleAdmin {
			rollcallsdk.ErrForbidden.WithMessage("admin role required").WriteError(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
