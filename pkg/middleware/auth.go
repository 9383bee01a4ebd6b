package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

type identityKey string

// IdentityContextKey guarda a identidade autenticada no contexto
const IdentityContextKey identityKey = "identity"

// AccessTokenHeader é o cabeçalho de autenticação esperado pelo painel
const AccessTokenHeader = "Access-Token"

// Authenticator valida o token de acesso e resolve a identidade do usuário
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.Identity, error)
}

// Auth exige um token de acesso válido em todas as rotas protegidas
func Auth(authenticator Authenticator, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(AccessTokenHeader)
			if token == "" {
				unauthorized(w, "Access token is required")
				return
			}

			identity, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Falha na autenticação da requisição")
				unauthorized(w, "Invalid or expired access token")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext recupera a identidade colocada pelo middleware
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(*domain.Identity)
	return identity, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"data":null,"message":"` + message + `"}`))
}
