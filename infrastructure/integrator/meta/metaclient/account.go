package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
)

// GetAccountCurrency lê a moeda da conta de anúncios
func (c *MetaClient) GetAccountCurrency(token, accountID string) (string, error) {
	var account struct {
		Currency string `json:"currency"`
	}
	if err := c.get(token, "/act_"+accountID, fieldsParam([]string{"currency"}), &account); err != nil {
		return "", err
	}

	return account.Currency, nil
}

// GetInsights lê as métricas de desempenho de um objeto de anúncio
func (c *MetaClient) GetInsights(token, objectID string, params url.Values) ([]map[string]interface{}, error) {
	var resp listResponse
	if err := c.get(token, "/"+objectID+"/insights", params, &resp); err != nil {
		return nil, err
	}

	var insights []map[string]interface{}
	if err := json.Unmarshal(resp.Data, &insights); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar métricas")
	}

	return insights, nil
}
