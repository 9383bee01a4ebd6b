package apiErrors

import (
	"errors"
	"net/http"
)

// Kind classifica o erro para decidir o status HTTP e o tratamento.
// O branching é sempre por tipo, nunca por inspeção de atributos.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindNotFound
	KindRemoteAPI
	KindStorage
	KindInternal
)

// Códigos de erro expostos para o cliente
const (
	// Erros de autenticação (AUTH)
	ErrInvalidToken          = "AUTH_001" // Token de acesso inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros de recursos (RES)
	ErrNotFound = "RES_001" // Recurso não encontrado

	// Erros do servidor e integrações (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo (Meta, Stripe, Cognito)
)

var httpStatusByKind = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindAuth:       http.StatusUnauthorized,
	KindNotFound:   http.StatusNotFound,
	KindRemoteAPI:  http.StatusBadRequest,
	KindStorage:    http.StatusInternalServerError,
	KindInternal:   http.StatusInternalServerError,
}

// APIError é o erro padronizado da API
type APIError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HTTPStatus resolve o status da resposta a partir do tipo do erro
func (e *APIError) HTTPStatus() int {
	if status, ok := httpStatusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newError(kind Kind, code, message string, err error) *APIError {
	return &APIError{Kind: kind, Code: code, Message: message, Err: err}
}

func Validation(message string) *APIError {
	return newError(KindValidation, ErrInvalidRequest, message, nil)
}

// MissingField é o erro padrão para campo obrigatório ausente
func MissingField(field string) *APIError {
	return newError(KindValidation, ErrMissingRequiredData, field+" is required", nil)
}

func Auth(message string) *APIError {
	return newError(KindAuth, ErrInvalidToken, message, nil)
}

func Forbidden(message string) *APIError {
	e := newError(KindAuth, ErrInsufficientPrivilege, message, nil)
	return e
}

func NotFound(message string) *APIError {
	return newError(KindNotFound, ErrNotFound, message, nil)
}

// RemoteAPI embrulha um erro da plataforma de anúncios com a mensagem
// legível que deve chegar ao cliente
func RemoteAPI(message string, err error) *APIError {
	return newError(KindRemoteAPI, ErrExternalService, message, err)
}

func Storage(message string, err error) *APIError {
	return newError(KindStorage, ErrDatabaseOperation, message, err)
}

func Internal(message string, err error) *APIError {
	return newError(KindInternal, ErrInternalServer, message, err)
}

// StatusOf resolve o status HTTP de qualquer erro retornado pelos usecases
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus()
	}
	return http.StatusBadRequest
}

// IsKind verifica o tipo de um erro sem expor a struct
func IsKind(err error, kind Kind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
