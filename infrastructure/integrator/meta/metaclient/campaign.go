package metaclient

import (
	"net/http"
	"strings"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
)

// GetCampaign lê os campos informados de uma campanha
func (c *MetaClient) GetCampaign(token, campaignID string, fields []string) (*metadomain.Campaign, error) {
	var campaign metadomain.Campaign
	if err := c.get(token, "/"+campaignID, fieldsParam(fields), &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

// UpdateCampaign aplica os parâmetros informados na campanha
func (c *MetaClient) UpdateCampaign(token, campaignID string, params map[string]interface{}) error {
	return c.post(token, "/"+campaignID, EncodeParams(params), nil)
}

// GetCampaignsBatch lê várias campanhas em uma só rodada de lotes. O
// Metadata de cada resultado é o campaign_id correspondente.
func (c *MetaClient) GetCampaignsBatch(token string, campaignIDs []string, fields []string) ([]BatchResult, error) {
	return c.RunBatch(token, func(b *Batch) error {
		for _, campaignID := range campaignIDs {
			relativeURL := campaignID
			if len(fields) > 0 {
				relativeURL += "?fields=" + strings.Join(fields, ",")
			}
			b.AddWithMetadata(BatchRequest{
				Method:      http.MethodGet,
				RelativeURL: relativeURL,
			}, campaignID)
		}
		return nil
	})
}
