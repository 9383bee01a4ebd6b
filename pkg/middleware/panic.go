package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// PanicRecovery impede que um panic em um handler derrube o servidor
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"panic": err,
					"stack": string(debug.Stack()),
				}).Error("Panic recuperado no handler")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"data":null,"message":"Internal server error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
