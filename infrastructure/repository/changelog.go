package repository

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// ChangeLogRepository guarda o histórico de alterações das contas
type ChangeLogRepository interface {
	Add(ctx context.Context, entry *domain.ChangeEntry) error
	ListByAccount(ctx context.Context, fbAccountID string) ([]*domain.ChangeEntry, error)
}

type changeLogRepository struct {
	store kvstore.Store
}

func NewChangeLogRepository(store kvstore.Store) ChangeLogRepository {
	return &changeLogRepository{store: store}
}

func (r *changeLogRepository) Add(ctx context.Context, entry *domain.ChangeEntry) error {
	item, err := encodeItem(entry)
	if err != nil {
		return err
	}

	return r.store.Create(ctx, pkChangeLog, entry.EntryID, item)
}

func (r *changeLogRepository) ListByAccount(ctx context.Context, fbAccountID string) ([]*domain.ChangeEntry, error) {
	items, err := r.store.Query(ctx, pkChangeLog, kvstore.Item{"fb_account_id": fbAccountID})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.ChangeEntry, 0, len(items))
	for _, item := range items {
		var entry domain.ChangeEntry
		if err := decodeItem(item, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
