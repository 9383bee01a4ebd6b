package middleware

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// RequireRole restringe uma rota a um papel específico de usuário
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"data":null,"message":"Insufficient privileges"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é o atalho para rotas administrativas
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRole(domain.RoleAdmin)
}
