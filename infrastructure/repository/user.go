package repository

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// UserRepository acessa os registros locais de usuários
type UserRepository interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, fields map[string]interface{}) error
}

type userRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Get(ctx context.Context, userID string) (*domain.User, error) {
	item, err := r.store.Get(ctx, pkUser, userID)
	if err != nil || item == nil {
		return nil, err
	}

	return decodeUser(item)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	items, err := r.store.Query(ctx, pkUser, kvstore.Item{"email": email})
	if err != nil || len(items) == 0 {
		return nil, err
	}

	return decodeUser(items[0])
}

func (r *userRepository) Update(ctx context.Context, userID string, fields map[string]interface{}) error {
	return r.store.Update(ctx, pkUser, userID, kvstore.Item(fields))
}

func decodeUser(item kvstore.Item) (*domain.User, error) {
	var user domain.User
	if err := decodeItem(item, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
