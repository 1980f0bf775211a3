package middleware

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

// publicPaths não passam pela guarda
var publicPaths = map[string]bool{
	"/healthcheck": true,
}

func AuthMiddleware(guard authenticating.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !guard.ValidateToken(strings.TrimSpace(tokenString)) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou ausente", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
