package metaclient

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
)

// ListAdSets lista os conjuntos de anúncios de uma campanha com todos
// os campos pedidos, preservando os atributos crus para a reconciliação
func (c *MetaClient) ListAdSets(token, campaignID string, fields []string) ([]metadomain.AdSet, error) {
	params := fieldsParam(fields)
	params.Set("limit", strconv.Itoa(100))

	var resp listResponse
	if err := c.get(token, "/"+campaignID+"/adsets", params, &resp); err != nil {
		return nil, err
	}

	var adSets []metadomain.AdSet
	if err := json.Unmarshal(resp.Data, &adSets); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar conjuntos de anúncios")
	}

	return adSets, nil
}

// UpdateAdSetsBatch aplica as escritas de conjuntos em lote. O Metadata
// de cada resultado é o id do conjunto correspondente.
func (c *MetaClient) UpdateAdSetsBatch(token string, updates []AdSetUpdate, raiseOnFailure bool) ([]BatchResult, error) {
	opts := []BatchOption{}
	if raiseOnFailure {
		opts = append(opts, WithRaiseOnFailure())
	}

	return c.RunBatch(token, func(b *Batch) error {
		for _, update := range updates {
			b.AddWithMetadata(BatchRequest{
				Method:      http.MethodPost,
				RelativeURL: update.ID,
				Body:        EncodeParams(update.Params),
			}, update.ID)
		}
		return nil
	}, opts...)
}
