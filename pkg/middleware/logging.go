package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-manager-api/pkg/log"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging registra cada requisição com um ID de correlação propagado
// pelo contexto para os usecases
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, correlationID := log.WithCorrelationID(r.Context())
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r.WithContext(ctx))

		log.L.WithFields(log.Fields{
			"correlation_id": correlationID,
			"method":         r.Method,
			"path":           r.URL.Path,
			"status":         recorder.status,
			"duration_ms":    time.Since(start).Milliseconds(),
		}).Info("Requisição processada")
	})
}
