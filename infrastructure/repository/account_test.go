package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// stubStore registra as chaves usadas em cada operação
type stubStore struct {
	getPK, getSK string
	getItem      kvstore.Item

	createPK, createSK string
	created            kvstore.Item

	updatePK, updateSK string
	updated            kvstore.Item
}

func (s *stubStore) Get(_ context.Context, pk, sk string) (kvstore.Item, error) {
	s.getPK, s.getSK = pk, sk
	return s.getItem, nil
}

func (s *stubStore) Query(context.Context, string, kvstore.Item) ([]kvstore.Item, error) {
	return nil, nil
}

func (s *stubStore) Create(_ context.Context, pk, sk string, item kvstore.Item) error {
	s.createPK, s.createSK = pk, sk
	s.created = item
	return nil
}

func (s *stubStore) Update(_ context.Context, pk, sk string, fields kvstore.Item) error {
	s.updatePK, s.updateSK = pk, sk
	s.updated = fields
	return nil
}

func (s *stubStore) Delete(context.Context, string, string) error { return nil }

func TestFBAccountRepositoryKeys(t *testing.T) {
	t.Run("leitura por usuário busca pela chave composta conta-usuário", func(t *testing.T) {
		store := &stubStore{getItem: kvstore.Item{
			"fb_account_id": "acc-1",
			"user_id":       "user-1",
			"access_token":  "token-1",
		}}
		repo := NewFBAccountRepository(store)

		account, err := repo.GetForUser(context.Background(), "acc-1", "user-1")

		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "fb_account", store.getPK)
		assert.Equal(t, "acc-1-user-1", store.getSK)
		assert.Equal(t, "token-1", account.AccessToken)
	})

	t.Run("gravação usa a chave composta e mantém o token nos atributos", func(t *testing.T) {
		store := &stubStore{}
		repo := NewFBAccountRepository(store)

		err := repo.Save(context.Background(), &domain.FBAccount{
			FBAccountID: "acc-1",
			UserID:      "user-1",
			AccessToken: "token-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "fb_account", store.createPK)
		assert.Equal(t, "acc-1-user-1", store.createSK)
		// o token não sai no json mas precisa ser persistido
		assert.Equal(t, "token-1", store.created["access_token"])
	})

	t.Run("atualização só toca o vínculo do usuário informado", func(t *testing.T) {
		store := &stubStore{}
		repo := NewFBAccountRepository(store)

		err := repo.Update(context.Background(), "acc-1", "user-1", map[string]interface{}{
			"status": false,
		})

		require.NoError(t, err)
		assert.Equal(t, "fb_account", store.updatePK)
		assert.Equal(t, "acc-1-user-1", store.updateSK)
		assert.Equal(t, kvstore.Item{"status": false}, store.updated)
	})
}
