package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/usecases/account"
)

func ListAccounts(service *account.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		accounts, err := service.ListAccounts(r.Context(), id.Email)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, accounts)
	})
}

func UpdateAccountStatus(service *account.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		// o status chega sem tipo garantido: o painel legado envia
		// strings, o atual envia booleanos
		var body struct {
			Status interface{} `json:"status"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		err = service.UpdateStatus(r.Context(), id.UserID, param(r, "accountID"), body.Status)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusOK, nil, "Conta atualizada")
	})
}

func UpdateAccountConversionEvent(service *account.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			ConversionEvent string `json:"conversion_event"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		err = service.UpdateConversionEvent(r.Context(), id.UserID, param(r, "accountID"), body.ConversionEvent)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusOK, nil, "Evento de conversão atualizado")
	})
}
