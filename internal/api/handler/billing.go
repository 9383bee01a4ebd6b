package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/usecases/billing"
)

func ListPlans(service *billing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := identity(r); err != nil {
			respondError(w, r, err)
			return
		}

		plans, err := service.Plans(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, plans)
	})
}

func Subscribe(service *billing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			PriceID string `json:"price_id"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		if err := service.Subscribe(r.Context(), id.UserID, body.PriceID); err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusOK, nil, "Assinatura criada")
	})
}
