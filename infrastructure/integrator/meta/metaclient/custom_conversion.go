package metaclient

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
)

// ListCustomConversions lista as conversões personalizadas da conta
func (c *MetaClient) ListCustomConversions(token, accountID string, limit int) ([]metadomain.CustomConversion, error) {
	params := fieldsParam([]string{"id", "name", "custom_event_type", "rule"})
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp listResponse
	if err := c.get(token, "/act_"+accountID+"/customconversions", params, &resp); err != nil {
		return nil, err
	}

	var conversions []metadomain.CustomConversion
	if err := json.Unmarshal(resp.Data, &conversions); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar conversões personalizadas")
	}

	return conversions, nil
}

// GetCustomConversionRule lê a regra de uma conversão personalizada,
// necessária para montar o objeto promovido dos conjuntos de anúncios
func (c *MetaClient) GetCustomConversionRule(token, conversionID string) (string, error) {
	var conversion metadomain.CustomConversion
	if err := c.get(token, "/"+conversionID, fieldsParam([]string{"id", "rule", "custom_event_type"}), &conversion); err != nil {
		return "", err
	}

	return conversion.Rule, nil
}
