package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope é o corpo padrão de todas as respostas da API
type envelope struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

func respond(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope{Data: data, Message: message}); err != nil {
		log.L.WithError(err).Error("Falha ao codificar resposta")
	}
}

func respondData(w http.ResponseWriter, data interface{}) {
	respond(w, http.StatusOK, data, "")
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).
		WithField("path", r.URL.Path).
		Warn("Requisição terminou com erro")

	respond(w, apiErrors.StatusOf(err), nil, errorMessage(err))
}

// errorMessage prefere a mensagem preparada para o usuário quando a
// plataforma de anúncios fornece uma
func errorMessage(err error) string {
	var requestErr *metadomain.RequestError
	if errors.As(err, &requestErr) {
		return requestErr.ReadableMessage()
	}

	return err.Error()
}

func decodeBody(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return apiErrors.Validation("corpo da requisição inválido")
	}
	return nil
}

func identity(r *http.Request) (*domain.Identity, error) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return nil, apiErrors.Auth("requisição sem identidade autenticada")
	}
	return id, nil
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
