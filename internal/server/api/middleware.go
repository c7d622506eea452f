package api

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// claimsFrom returns the claims stored by authenticate. Handlers behind
// authenticate can rely on them being present.
func claimsFrom(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

// authenticate admits requests with a valid bearer token of an open session
// whose role is one of roles. Missing or revoked tokens get 401, a valid
// token with another role gets 403.
func (s *HTTPServer) authenticate(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken, ok := common.ParseBearer(r.Header.Get(common.AuthorizationHeader))
			if !ok {
				writeStatus(w, r, http.StatusUnauthorized)
				return
			}

			claims, err := s.users.Authenticate(r.Context(), accessToken)
			if err != nil {
				s.logger.Debug(r.Context(), "rejected token", "error", err, "request_id", middleware.GetReqID(r.Context()))
				writeStatus(w, r, http.StatusUnauthorized)
				return
			}

			if !slices.Contains(roles, claims.Role()) {
				writeStatus(w, r, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			}
			if ww.Status() >= http.StatusInternalServerError {
				s.logger.Error(r.Context(), "request", args...)
				return
			}
			s.logger.Info(r.Context(), "request", args...)
		}()

		next.ServeHTTP(ww, r)
	})
}

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrAuthentication), errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
