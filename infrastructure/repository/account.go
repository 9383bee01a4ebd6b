package repository

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// FBAccountRepository acessa as contas de anúncios dos usuários. Cada
// registro representa o vínculo de uma conta com um usuário: a mesma
// conta compartilhada por dois usuários gera dois registros, com a
// chave composta <fb_account_id>-<user_id>.
type FBAccountRepository interface {
	// Get devolve o primeiro vínculo encontrado da conta, usado quando
	// o usuário não é conhecido
	Get(ctx context.Context, fbAccountID string) (*domain.FBAccount, error)
	// GetForUser valida que a conta pertence ao usuário antes de devolvê-la
	GetForUser(ctx context.Context, fbAccountID, userID string) (*domain.FBAccount, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.FBAccount, error)
	List(ctx context.Context) ([]*domain.FBAccount, error)
	Save(ctx context.Context, account *domain.FBAccount) error
	Update(ctx context.Context, fbAccountID, userID string, fields map[string]interface{}) error
}

type fbAccountRepository struct {
	store kvstore.Store
}

func NewFBAccountRepository(store kvstore.Store) FBAccountRepository {
	return &fbAccountRepository{store: store}
}

func skFBAccount(fbAccountID, userID string) string {
	return fbAccountID + "-" + userID
}

func (r *fbAccountRepository) Get(ctx context.Context, fbAccountID string) (*domain.FBAccount, error) {
	accounts, err := r.query(ctx, kvstore.Item{"fb_account_id": fbAccountID})
	if err != nil || len(accounts) == 0 {
		return nil, err
	}

	return accounts[0], nil
}

func (r *fbAccountRepository) GetForUser(ctx context.Context, fbAccountID, userID string) (*domain.FBAccount, error) {
	item, err := r.store.Get(ctx, pkFBAccount, skFBAccount(fbAccountID, userID))
	if err != nil || item == nil {
		return nil, err
	}

	var account domain.FBAccount
	if err := decodeItem(item, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *fbAccountRepository) ListByEmail(ctx context.Context, email string) ([]*domain.FBAccount, error) {
	return r.query(ctx, kvstore.Item{"user_email": email})
}

func (r *fbAccountRepository) List(ctx context.Context) ([]*domain.FBAccount, error) {
	return r.query(ctx, nil)
}

func (r *fbAccountRepository) Save(ctx context.Context, account *domain.FBAccount) error {
	item, err := encodeItem(account)
	if err != nil {
		return err
	}

	item["access_token"] = account.AccessToken

	return r.store.Create(ctx, pkFBAccount, skFBAccount(account.FBAccountID, account.UserID), item)
}

func (r *fbAccountRepository) Update(ctx context.Context, fbAccountID, userID string, fields map[string]interface{}) error {
	return r.store.Update(ctx, pkFBAccount, skFBAccount(fbAccountID, userID), kvstore.Item(fields))
}

func (r *fbAccountRepository) query(ctx context.Context, filter kvstore.Item) ([]*domain.FBAccount, error) {
	items, err := r.store.Query(ctx, pkFBAccount, filter)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.FBAccount, 0, len(items))
	for _, item := range items {
		var account domain.FBAccount
		if err := decodeItem(item, &account); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	return accounts, nil
}
