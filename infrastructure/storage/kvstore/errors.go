package kvstore

import "github.com/pkg/errors"

// ErrItemNotFound indica atualização sobre chave inexistente
var ErrItemNotFound = errors.New("registro não encontrado")
