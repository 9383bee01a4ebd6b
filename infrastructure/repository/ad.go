package repository

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// AdRepository acessa os criativos importados
type AdRepository interface {
	Get(ctx context.Context, adID string) (*domain.Ad, error)
	ListByAccount(ctx context.Context, fbAccountID string) ([]*domain.Ad, error)
	Save(ctx context.Context, ad *domain.Ad) error
	Update(ctx context.Context, adID string, fields map[string]interface{}) error
	Delete(ctx context.Context, adID string) error
}

type adRepository struct {
	store kvstore.Store
}

func NewAdRepository(store kvstore.Store) AdRepository {
	return &adRepository{store: store}
}

func (r *adRepository) Get(ctx context.Context, adID string) (*domain.Ad, error) {
	item, err := r.store.Get(ctx, pkAd, adID)
	if err != nil || item == nil {
		return nil, err
	}

	var ad domain.Ad
	if err := decodeItem(item, &ad); err != nil {
		return nil, err
	}

	return &ad, nil
}

func (r *adRepository) ListByAccount(ctx context.Context, fbAccountID string) ([]*domain.Ad, error) {
	items, err := r.store.Query(ctx, pkAd, kvstore.Item{"fb_account_id": fbAccountID})
	if err != nil {
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(items))
	for _, item := range items {
		var ad domain.Ad
		if err := decodeItem(item, &ad); err != nil {
			return nil, err
		}
		ads = append(ads, &ad)
	}

	return ads, nil
}

func (r *adRepository) Save(ctx context.Context, ad *domain.Ad) error {
	item, err := encodeItem(ad)
	if err != nil {
		return err
	}

	return r.store.Create(ctx, pkAd, ad.AdID, item)
}

func (r *adRepository) Update(ctx context.Context, adID string, fields map[string]interface{}) error {
	return r.store.Update(ctx, pkAd, adID, kvstore.Item(fields))
}

func (r *adRepository) Delete(ctx context.Context, adID string) error {
	return r.store.Delete(ctx, pkAd, adID)
}
