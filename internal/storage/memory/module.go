package memory

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/micromart/internal/config"
	"github.com/polkiloo/micromart/internal/domain/repository"
)

// DirectoryModule provides the user store for the directory service.
var DirectoryModule = fx.Provide(newUserStore)

// OrderModule provides the order store for the order service.
var OrderModule = fx.Provide(newOrderStore)

func newUserStore(cfg *config.DirectoryConfig) (repository.UserRepository, error) {
	store := NewUserStore()
	if cfg.SeedData {
		if err := SeedUsers(context.Background(), store); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func newOrderStore(cfg *config.OrderConfig) (repository.OrderRepository, error) {
	store := NewOrderStore()
	if cfg.SeedData {
		if err := SeedOrders(context.Background(), store); err != nil {
			return nil, err
		}
	}
	return store, nil
}
