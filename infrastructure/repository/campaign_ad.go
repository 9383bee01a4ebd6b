package repository

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// CampaignAdRepository mantém os vínculos entre campanhas e criativos
type CampaignAdRepository interface {
	Link(ctx context.Context, campaignID, adID string) error
	Unlink(ctx context.Context, campaignID, adID string) error
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.CampaignAd, error)
	ListByAd(ctx context.Context, adID string) ([]*domain.CampaignAd, error)
	DeleteByCampaign(ctx context.Context, campaignID string) error
}

type campaignAdRepository struct {
	store kvstore.Store
}

func NewCampaignAdRepository(store kvstore.Store) CampaignAdRepository {
	return &campaignAdRepository{store: store}
}

func linkKey(campaignID, adID string) string {
	return campaignID + "#" + adID
}

func (r *campaignAdRepository) Link(ctx context.Context, campaignID, adID string) error {
	item := kvstore.Item{"campaign_id": campaignID, "ad_id": adID}
	return r.store.Create(ctx, pkCampaignAd, linkKey(campaignID, adID), item)
}

func (r *campaignAdRepository) Unlink(ctx context.Context, campaignID, adID string) error {
	return r.store.Delete(ctx, pkCampaignAd, linkKey(campaignID, adID))
}

func (r *campaignAdRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.CampaignAd, error) {
	return r.query(ctx, kvstore.Item{"campaign_id": campaignID})
}

func (r *campaignAdRepository) ListByAd(ctx context.Context, adID string) ([]*domain.CampaignAd, error) {
	return r.query(ctx, kvstore.Item{"ad_id": adID})
}

func (r *campaignAdRepository) DeleteByCampaign(ctx context.Context, campaignID string) error {
	links, err := r.ListByCampaign(ctx, campaignID)
	if err != nil {
		return err
	}

	for _, link := range links {
		if err := r.Unlink(ctx, link.CampaignID, link.AdID); err != nil {
			return err
		}
	}

	return nil
}

func (r *campaignAdRepository) query(ctx context.Context, filter kvstore.Item) ([]*domain.CampaignAd, error) {
	items, err := r.store.Query(ctx, pkCampaignAd, filter)
	if err != nil {
		return nil, err
	}

	links := make([]*domain.CampaignAd, 0, len(items))
	for _, item := range items {
		var link domain.CampaignAd
		if err := decodeItem(item, &link); err != nil {
			return nil, err
		}
		links = append(links, &link)
	}

	return links, nil
}
