package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-manager-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			log.L.WithError(err).Warn("Falha ao responder o healthcheck")
		}
	})
}
