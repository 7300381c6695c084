package handlers

import (
	"context"

	"github.com/polkiloo/micromart/internal/domain/model"
	"github.com/polkiloo/micromart/internal/usecase"
)

// DirectoryFacade describes the directory capabilities required by
// handlers.
type DirectoryFacade interface {
	User(ctx context.Context, id int64) (*model.User, error)
	Users(ctx context.Context, active *bool) ([]model.User, error)
	CreateUser(ctx context.Context, name, email string, active bool) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (*model.User, error)
}

// OrderFacade encapsulates the order operations exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, id int64) (*model.EnrichedOrder, error)
	Orders(ctx context.Context) ([]model.Order, error)
	OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error)
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error)
}
