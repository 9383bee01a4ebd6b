package metaclient

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
)

// ListPixels lista os pixels da conta
func (c *MetaClient) ListPixels(token, accountID string) ([]metadomain.NamedObject, error) {
	return c.listNamedObjects(token, "/act_"+accountID+"/adspixels", 0)
}

// ListMobileApps lista os aplicativos anunciáveis da conta
func (c *MetaClient) ListMobileApps(token, accountID string) ([]metadomain.NamedObject, error) {
	return c.listNamedObjects(token, "/act_"+accountID+"/advertisable_applications", 0)
}

// ListCustomAudiences lista os públicos personalizados da conta
func (c *MetaClient) ListCustomAudiences(token, accountID string, limit int) ([]metadomain.NamedObject, error) {
	return c.listNamedObjects(token, "/act_"+accountID+"/customaudiences", limit)
}

// ListPages lista as páginas administradas pelo token
func (c *MetaClient) ListPages(token string) ([]metadomain.NamedObject, error) {
	return c.listNamedObjects(token, "/me/accounts", 0)
}

// CreateLookalikeAudience cria um público semelhante e devolve o id
func (c *MetaClient) CreateLookalikeAudience(token, accountID string, params map[string]interface{}) (string, error) {
	return c.createObject(token, "/act_"+accountID+"/customaudiences", params)
}

func (c *MetaClient) listNamedObjects(token, path string, limit int) ([]metadomain.NamedObject, error) {
	params := fieldsParam([]string{"id", "name"})
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp listResponse
	if err := c.get(token, path, params, &resp); err != nil {
		return nil, err
	}

	var objects []metadomain.NamedObject
	if err := json.Unmarshal(resp.Data, &objects); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar recursos da conta")
	}

	return objects, nil
}
