package middlewares

import (
	"context"
	"net/http"
	"strings"

	"gachi/gachi/config"
	"gachi/gachi/utils/security"
)

type contextKey string

const UserEmailKey contextKey = "user_email"

// AuthMiddleware validates the Bearer token and stores the subject email in
// the request context. Identity resolution against the users table happens
// in the controllers, which surface their own not-found error.
func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			email, err := security.ParseAccessToken(parts[1], cfg.JWTSecret)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFrom returns the authenticated email stored by AuthMiddleware.
func EmailFrom(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}
