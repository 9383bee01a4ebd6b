package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

type batchServer struct {
	server *httptest.Server
	// tamanho de cada lote recebido, na ordem de chegada
	chunkSizes []int
	// failAt devolve code 400 para os índices globais informados
	failAt map[int]bool
	seen   int
}

func newBatchServer(t *testing.T) *batchServer {
	bs := &batchServer{failAt: map[int]bool{}}

	bs.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.NotEmpty(t, r.Form.Get("access_token"))

		var operations []batchOperation
		require.NoError(t, json.Unmarshal([]byte(r.Form.Get("batch")), &operations))
		bs.chunkSizes = append(bs.chunkSizes, len(operations))

		entries := make([]*batchEntry, 0, len(operations))
		for _, op := range operations {
			if bs.failAt[bs.seen] {
				entries = append(entries, &batchEntry{
					Code: 400,
					Body: `{"error":{"message":"falhou","error_user_msg":"Mensagem para o usuário"}}`,
				})
			} else {
				entries = append(entries, &batchEntry{
					Code: 200,
					Body: fmt.Sprintf(`{"id":%q}`, op.RelativeURL),
				})
			}
			bs.seen++
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(entries))
	}))

	return bs
}

func newTestClient(serverURL string) *MetaClient {
	return New(config.MetaConfig{URL: serverURL, APIVersion: "v18.0"})
}

func TestBatchExecute(t *testing.T) {
	t.Run("divide as operações em lotes de no máximo 50 chamadas", func(t *testing.T) {
		bs := newBatchServer(t)
		defer bs.server.Close()

		client := newTestClient(bs.server.URL)
		batch := client.NewBatch("token")

		for i := 0; i < 120; i++ {
			batch.AddWithMetadata(BatchRequest{
				Method:      http.MethodGet,
				RelativeURL: fmt.Sprintf("campaign-%d", i),
			}, i)
		}

		results, err := batch.Execute()

		require.NoError(t, err)
		assert.Equal(t, []int{50, 50, 20}, bs.chunkSizes)
		require.Len(t, results, 120)
	})

	t.Run("preserva a ordem e o metadado de correlação de cada operação", func(t *testing.T) {
		bs := newBatchServer(t)
		defer bs.server.Close()

		client := newTestClient(bs.server.URL)
		batch := client.NewBatch("token")

		for i := 0; i < 75; i++ {
			batch.AddWithMetadata(BatchRequest{
				Method:      http.MethodGet,
				RelativeURL: fmt.Sprintf("campaign-%d", i),
			}, fmt.Sprintf("meta-%d", i))
		}

		results, err := batch.Execute()

		require.NoError(t, err)
		require.Len(t, results, 75)
		for i, result := range results {
			assert.Equal(t, fmt.Sprintf("meta-%d", i), result.Metadata)

			var body struct {
				ID string `json:"id"`
			}
			require.NoError(t, json.Unmarshal(result.Body, &body))
			assert.Equal(t, fmt.Sprintf("campaign-%d", i), body.ID)
		}
	})

	t.Run("sem raiseOnFailure as falhas individuais não viram erro da execução", func(t *testing.T) {
		bs := newBatchServer(t)
		defer bs.server.Close()
		bs.failAt[1] = true

		client := newTestClient(bs.server.URL)
		batch := client.NewBatch("token")

		for i := 0; i < 3; i++ {
			batch.Add(BatchRequest{Method: http.MethodGet, RelativeURL: fmt.Sprintf("c-%d", i)})
		}

		results, err := batch.Execute()

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.NoError(t, results[0].Err)
		assert.Error(t, results[1].Err)
		assert.NoError(t, results[2].Err)
	})

	t.Run("com raiseOnFailure devolve a primeira falha depois de submeter todos os lotes", func(t *testing.T) {
		bs := newBatchServer(t)
		defer bs.server.Close()
		bs.failAt[3] = true
		bs.failAt[60] = true

		client := newTestClient(bs.server.URL)
		batch := client.NewBatch("token", WithRaiseOnFailure())

		for i := 0; i < 70; i++ {
			batch.Add(BatchRequest{Method: http.MethodGet, RelativeURL: fmt.Sprintf("c-%d", i)})
		}

		results, err := batch.Execute()

		require.Error(t, err)
		// todos os lotes foram submetidos mesmo com falha no primeiro
		assert.Equal(t, []int{50, 20}, bs.chunkSizes)
		require.Len(t, results, 70)

		// o erro devolvido é o da primeira falha, com a mensagem legível
		var requestErr *metadomain.RequestError
		require.ErrorAs(t, err, &requestErr)
		assert.Equal(t, "Mensagem para o usuário", requestErr.ReadableMessage())
		assert.Same(t, results[3].Err.(*metadomain.RequestError), requestErr)
	})

	t.Run("entrada nula no lote indica timeout da operação", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[null]`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		batch := client.NewBatch("token")
		batch.Add(BatchRequest{Method: http.MethodGet, RelativeURL: "c-1"})

		results, err := batch.Execute()

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Error(t, results[0].Err)
	})
}

func TestRunBatch(t *testing.T) {
	t.Run("executa o lote mesmo quando a função devolve erro", func(t *testing.T) {
		bs := newBatchServer(t)
		defer bs.server.Close()

		client := newTestClient(bs.server.URL)
		fnErr := errors.New("falha ao montar operações")

		results, err := client.RunBatch("token", func(b *Batch) error {
			b.Add(BatchRequest{Method: http.MethodGet, RelativeURL: "c-1"})
			return fnErr
		})

		// o lote acumulado foi submetido e o erro da função tem precedência
		assert.Equal(t, []int{1}, bs.chunkSizes)
		require.Len(t, results, 1)
		assert.Equal(t, fnErr, err)
	})

	t.Run("devolve os resultados quando a função termina sem erro", func(t *testing.T) {
		bs := newBatchServer(t)
		defer bs.server.Close()

		client := newTestClient(bs.server.URL)

		results, err := client.RunBatch("token", func(b *Batch) error {
			b.Add(BatchRequest{Method: http.MethodGet, RelativeURL: "c-1"})
			b.Add(BatchRequest{Method: http.MethodGet, RelativeURL: "c-2"})
			return nil
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
	})
}
