package metadomain

import "fmt"

// ErrorResponse é o envelope de erro devolvido pela Graph API
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carrega os campos de erro da Graph API. ErrorUserMsg,
// quando presente, é a mensagem preparada para exibição ao usuário.
type ErrorDetail struct {
	Message        string `json:"message"`
	Type           string `json:"type"`
	Code           int    `json:"code"`
	ErrorSubcode   int    `json:"error_subcode"`
	ErrorUserTitle string `json:"error_user_title"`
	ErrorUserMsg   string `json:"error_user_msg"`
	FBTraceID      string `json:"fbtrace_id"`
}

// RequestError representa uma chamada rejeitada pela Graph API
type RequestError struct {
	StatusCode int
	Detail     ErrorDetail
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("graph api: status %d: %s", e.StatusCode, e.Detail.Message)
}

// ReadableMessage devolve a mensagem destinada ao usuário quando a
// plataforma fornece uma, senão a mensagem técnica
func (e *RequestError) ReadableMessage() string {
	if e.Detail.ErrorUserMsg != "" {
		return e.Detail.ErrorUserMsg
	}
	return e.Detail.Message
}

// ReadableError extrai a mensagem legível de qualquer erro da integração
func ReadableError(err error) string {
	if requestErr, ok := err.(*RequestError); ok {
		return requestErr.ReadableMessage()
	}
	return err.Error()
}
