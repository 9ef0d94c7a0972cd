package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/umputun/feedsense/pkg/domain"
)

type ctxKey string

const userKey ctxKey = "user"

// authMiddleware verifies the bearer token and puts the user into request context
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			renderError(w, r, http.StatusUnauthorized, errors.New("no authorization header"), "Missing authorization header")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		user, err := s.verifier.Verify(r.Context(), token)
		if err != nil {
			renderError(w, r, http.StatusUnauthorized, err, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// userFromContext returns user set by authMiddleware
func userFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}
