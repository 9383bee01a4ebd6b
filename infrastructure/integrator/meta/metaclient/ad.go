package metaclient

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
)

// ListCampaignAds lista os anúncios de uma campanha
func (c *MetaClient) ListCampaignAds(token, campaignID string, fields []string, limit int) ([]metadomain.Ad, error) {
	return c.listAds(token, "/"+campaignID+"/ads", fields, limit)
}

// ListAccountAds lista os anúncios da conta inteira
func (c *MetaClient) ListAccountAds(token, accountID string, fields []string, limit int) ([]metadomain.Ad, error) {
	return c.listAds(token, "/act_"+accountID+"/ads", fields, limit)
}

func (c *MetaClient) listAds(token, path string, fields []string, limit int) ([]metadomain.Ad, error) {
	params := fieldsParam(fields)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp listResponse
	if err := c.get(token, path, params, &resp); err != nil {
		return nil, err
	}

	var ads []metadomain.Ad
	if err := json.Unmarshal(resp.Data, &ads); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar anúncios")
	}

	return ads, nil
}

// GetAd lê os campos informados de um anúncio
func (c *MetaClient) GetAd(token, adID string, fields []string) (*metadomain.Ad, error) {
	var ad metadomain.Ad
	if err := c.get(token, "/"+adID, fieldsParam(fields), &ad); err != nil {
		return nil, err
	}

	return &ad, nil
}

// UpdateAd aplica os parâmetros informados no anúncio
func (c *MetaClient) UpdateAd(token, adID string, params map[string]interface{}) error {
	return c.post(token, "/"+adID, EncodeParams(params), nil)
}

// DeleteAdsBatch remove vários anúncios em lote. O Metadata de cada
// resultado é o id do anúncio correspondente.
func (c *MetaClient) DeleteAdsBatch(token string, adIDs []string) ([]BatchResult, error) {
	return c.RunBatch(token, func(b *Batch) error {
		for _, adID := range adIDs {
			b.AddWithMetadata(BatchRequest{
				Method:      http.MethodDelete,
				RelativeURL: adID,
			}, adID)
		}
		return nil
	})
}

// GetCreativePreview devolve o iframe de pré-visualização do criativo
func (c *MetaClient) GetCreativePreview(token, creativeID, format string) (string, error) {
	params := url.Values{}
	params.Set("ad_format", format)

	var resp listResponse
	if err := c.get(token, "/"+creativeID+"/previews", params, &resp); err != nil {
		return "", err
	}

	var previews []struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(resp.Data, &previews); err != nil {
		return "", errors.Wrap(err, "falha ao decodificar pré-visualização")
	}

	if len(previews) == 0 {
		return "", nil
	}

	return previews[0].Body, nil
}

// CreateCreative cria um criativo na conta e devolve o id
func (c *MetaClient) CreateCreative(token, accountID string, params map[string]interface{}) (string, error) {
	return c.createObject(token, "/act_"+accountID+"/adcreatives", params)
}

// CreateAd cria um anúncio na conta e devolve o id
func (c *MetaClient) CreateAd(token, accountID string, params map[string]interface{}) (string, error) {
	return c.createObject(token, "/act_"+accountID+"/ads", params)
}

func (c *MetaClient) createObject(token, path string, params map[string]interface{}) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := c.post(token, path, EncodeParams(params), &created); err != nil {
		return "", err
	}

	return created.ID, nil
}
