package repository

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// CampaignRepository acessa os espelhos locais de campanhas
type CampaignRepository interface {
	Get(ctx context.Context, campaignID string) (*domain.Campaign, error)
	// GetItem devolve os atributos crus, usado pela reconciliação para
	// capturar o estado original antes de aplicar mudanças
	GetItem(ctx context.Context, campaignID string) (kvstore.Item, error)
	ListByAccount(ctx context.Context, fbAccountID string) ([]*domain.Campaign, error)
	Save(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaignID string, fields map[string]interface{}) error
	Delete(ctx context.Context, campaignID string) error
}

type campaignRepository struct {
	store kvstore.Store
}

// NewCampaignRepository cria o repositório sobre a tabela única
func NewCampaignRepository(store kvstore.Store) CampaignRepository {
	return &campaignRepository{store: store}
}

func (r *campaignRepository) Get(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	item, err := r.store.Get(ctx, pkCampaign, campaignID)
	if err != nil || item == nil {
		return nil, err
	}

	return decodeCampaign(item)
}

func (r *campaignRepository) GetItem(ctx context.Context, campaignID string) (kvstore.Item, error) {
	return r.store.Get(ctx, pkCampaign, campaignID)
}

func (r *campaignRepository) ListByAccount(ctx context.Context, fbAccountID string) ([]*domain.Campaign, error) {
	items, err := r.store.Query(ctx, pkCampaign, kvstore.Item{"fb_account_id": fbAccountID})
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(items))
	for _, item := range items {
		campaign, err := decodeCampaign(item)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func (r *campaignRepository) Save(ctx context.Context, campaign *domain.Campaign) error {
	item, err := encodeItem(campaign)
	if err != nil {
		return err
	}

	item["budget"] = campaign.Budget.InexactFloat64()
	item["cpa_goal"] = campaign.CPAGoal.InexactFloat64()
	item["conversion_event"] = kvstore.Item{
		"name": campaign.ConversionEvent.Name,
		"kind": string(campaign.ConversionEvent.Kind),
	}

	return r.store.Create(ctx, pkCampaign, campaign.CampaignID, item)
}

func (r *campaignRepository) Update(ctx context.Context, campaignID string, fields map[string]interface{}) error {
	return r.store.Update(ctx, pkCampaign, campaignID, kvstore.Item(fields))
}

func (r *campaignRepository) Delete(ctx context.Context, campaignID string) error {
	return r.store.Delete(ctx, pkCampaign, campaignID)
}

// decodeCampaign trata os campos que não seguem o decode padrão: os
// valores monetários e o evento de conversão, que pode estar gravado
// no formato legado
func decodeCampaign(item kvstore.Item) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := decodeItem(item, &campaign); err != nil {
		return nil, err
	}

	campaign.Budget = decimalFrom(item["budget"])
	campaign.CPAGoal = decimalFrom(item["cpa_goal"])

	event, legacy := domain.ParseConversionEvent(item["conversion_event"])
	campaign.ConversionEvent = event
	campaign.ConversionEventLegacy = legacy

	return &campaign, nil
}
