package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

type userCtxKey struct{}

// currentUser returns the active account resolved by RequireActiveUser.
func currentUser(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domain.User)
	return u, ok
}

// RequireActiveUser runs after httpx.AuthnMiddleware. It resolves the token
// subject to an account and rejects inactive or vanished accounts, so
// handlers behind it can assume a live user in context.
func RequireActiveUser(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			subject := httpx.SubjectFromCtx(ctx)
			if subject == "" {
				mapServiceError(service.ErrTokenInvalid).WriteError(w)
				return
			}

			user, err := auth.CurrentActiveUser(ctx, subject)
			if err != nil {
				slogx.FromContext(ctx).Warn("active user gate rejected request", "subject", subject, "err", err)
				// A subject that no longer resolves is an auth failure, not
				// a 404: the token is valid but its account is gone.
				if errors.Is(err, service.ErrUserNotFound) {
					err = service.ErrTokenInvalid
				}
				mapServiceError(err).WriteError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, userCtxKey{}, user)))
		})
	}
}
