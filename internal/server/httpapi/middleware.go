package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// authMiddleware authenticates every request behind it: a bearer token in
// the Authorization header, or the userId/password query parameters used by
// the demo clients. The resolved record is stored on the request context for
// the remainder of the request; no session outlives it.
func (s *HTTPServer) authMiddleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		var (
			user *models.User
			err  error
		)

		if h := ctx.Header("Authorization"); strings.HasPrefix(h, "Bearer ") {
			user, err = s.service.AuthenticateToken(ctx.Context(), strings.TrimPrefix(h, "Bearer "))
		} else {
			user, err = s.service.Authenticate(ctx.Context(), ctx.Query("userId"), ctx.Query("password"))
		}

		if err != nil {
			s.logger.Warn(ctx.Context(), "authentication failed", "error", err)

			status := http.StatusUnauthorized
			switch {
			case errors.Is(err, common.ErrorNotFound):
				status = http.StatusNotFound
			case errors.Is(err, common.ErrorCorrupt), errors.Is(err, common.ErrorUnavailable):
				status = http.StatusInternalServerError
			}

			_ = huma.WriteErr(api, ctx, status, err.Error())
			return
		}

		next(huma.WithContext(ctx, context.WithValue(ctx.Context(), userKey, user)))
	}
}

// UserFromContext returns the record resolved by the auth middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
