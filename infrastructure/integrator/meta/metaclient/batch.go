package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// maxBatchSize é o limite de operações por requisição de lote da Graph API
const maxBatchSize = 50

// BatchRequest é uma operação individual dentro de um lote
type BatchRequest struct {
	Method      string
	RelativeURL string
	Body        url.Values
}

// BatchResult é o resultado de uma operação do lote. Metadata devolve o
// valor de correlação informado no Add, na mesma ordem das operações.
type BatchResult struct {
	Code     int
	Body     json.RawMessage
	Metadata interface{}
	Err      error
}

// AdSetUpdate é uma escrita de conjunto de anúncios para lote
type AdSetUpdate struct {
	ID     string
	Params map[string]interface{}
}

type batchCall struct {
	request  BatchRequest
	metadata interface{}
}

// Batch acumula operações e as submete em requisições de no máximo 50
// chamadas. Com raiseOnFailure, Execute devolve a primeira falha
// individual como erro, mas só depois de submeter todos os lotes.
type Batch struct {
	client         *MetaClient
	token          string
	raiseOnFailure bool
	calls          []batchCall
}

// BatchOption configura o comportamento do lote
type BatchOption func(*Batch)

// WithRaiseOnFailure faz Execute devolver a primeira falha individual
func WithRaiseOnFailure() BatchOption {
	return func(b *Batch) { b.raiseOnFailure = true }
}

// NewBatch cria um lote vazio para o token informado
func (c *MetaClient) NewBatch(token string, opts ...BatchOption) *Batch {
	b := &Batch{client: c, token: token}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add acumula uma operação sem metadado de correlação
func (b *Batch) Add(request BatchRequest) {
	b.AddWithMetadata(request, nil)
}

// AddWithMetadata acumula uma operação com um metadado que será
// devolvido no resultado correspondente
func (b *Batch) AddWithMetadata(request BatchRequest, metadata interface{}) {
	b.calls = append(b.calls, batchCall{request: request, metadata: metadata})
}

// Len devolve o número de operações acumuladas
func (b *Batch) Len() int {
	return len(b.calls)
}

// Execute submete as operações acumuladas em lotes de até 50 chamadas.
// Os resultados saem na mesma ordem dos Adds. O lote pode ser
// reutilizado: Execute limpa as operações acumuladas.
func (b *Batch) Execute() ([]BatchResult, error) {
	calls := b.calls
	b.calls = nil

	results := make([]BatchResult, 0, len(calls))
	var firstFailure error

	for start := 0; start < len(calls); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(calls) {
			end = len(calls)
		}

		chunkResults, err := b.executeChunk(calls[start:end])
		if err != nil {
			return results, err
		}

		for _, result := range chunkResults {
			if result.Err != nil && firstFailure == nil {
				firstFailure = result.Err
			}
			results = append(results, result)
		}
	}

	if b.raiseOnFailure {
		return results, firstFailure
	}

	return results, nil
}

type batchOperation struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
	Body        string `json:"body,omitempty"`
}

type batchEntry struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}

func (b *Batch) executeChunk(calls []batchCall) ([]BatchResult, error) {
	operations := make([]batchOperation, 0, len(calls))
	for _, call := range calls {
		operations = append(operations, batchOperation{
			Method:      call.request.Method,
			RelativeURL: call.request.RelativeURL,
			Body:        call.request.Body.Encode(),
		})
	}

	payload, err := json.Marshal(operations)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao serializar lote")
	}

	params := url.Values{}
	params.Set("batch", string(payload))

	var entries []*batchEntry
	if err := b.client.post(b.token, "/", params, &entries); err != nil {
		return nil, errors.Wrap(err, "falha ao submeter lote")
	}

	if len(entries) != len(calls) {
		return nil, errors.Errorf("lote devolveu %d resultados para %d operações", len(entries), len(calls))
	}

	results := make([]BatchResult, 0, len(calls))
	for i, entry := range entries {
		results = append(results, b.toResult(calls[i], entry))
	}

	return results, nil
}

func (b *Batch) toResult(call batchCall, entry *batchEntry) BatchResult {
	// Entradas nulas indicam timeout da operação dentro do lote
	if entry == nil {
		return BatchResult{
			Metadata: call.metadata,
			Err:      errors.Errorf("operação %s expirou dentro do lote", call.request.RelativeURL),
		}
	}

	result := BatchResult{
		Code:     entry.Code,
		Body:     json.RawMessage(entry.Body),
		Metadata: call.metadata,
	}

	if entry.Code != 200 {
		result.Err = decodeError(entry.Code, []byte(entry.Body))
		log.L.WithFields(log.Fields{
			"relative_url": call.request.RelativeURL,
			"code":         entry.Code,
		}).Warn("Operação do lote falhou")
	}

	return result
}

// RunBatch garante a execução do lote na saída da função, com ou sem
// erro. O erro da função tem precedência sobre o erro da execução.
func (c *MetaClient) RunBatch(token string, fn func(b *Batch) error, opts ...BatchOption) ([]BatchResult, error) {
	b := c.NewBatch(token, opts...)

	fnErr := fn(b)
	results, execErr := b.Execute()

	if fnErr != nil {
		return results, fnErr
	}

	return results, execErr
}

// decodeBatchBody decodifica o corpo de um resultado de lote
func decodeBatchBody(result BatchResult, out interface{}) error {
	if result.Err != nil {
		return result.Err
	}
	return errors.Wrap(json.Unmarshal(result.Body, out), "falha ao decodificar resultado do lote")
}
