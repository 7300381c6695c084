package app

import (
	"context"

	"github.com/polkiloo/micromart/internal/domain/model"
	"github.com/polkiloo/micromart/internal/usecase"
)

// DirectoryFacade aggregates the directory operations exposed over HTTP.
type DirectoryFacade struct {
	users *usecase.UserUseCase
}

// NewDirectoryFacade constructs DirectoryFacade.
func NewDirectoryFacade(users *usecase.UserUseCase) *DirectoryFacade {
	return &DirectoryFacade{users: users}
}

func (f *DirectoryFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *DirectoryFacade) Users(ctx context.Context, active *bool) ([]model.User, error) {
	return f.users.List(ctx, active)
}

func (f *DirectoryFacade) CreateUser(ctx context.Context, name, email string, active bool) (*model.User, error) {
	return f.users.Create(ctx, name, email, active)
}

func (f *DirectoryFacade) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Delete(ctx, id)
}

// OrderFacade aggregates the order operations exposed over HTTP.
type OrderFacade struct {
	orders *usecase.OrderUseCase
}

// NewOrderFacade constructs OrderFacade.
func NewOrderFacade(orders *usecase.OrderUseCase) *OrderFacade {
	return &OrderFacade{orders: orders}
}

func (f *OrderFacade) Order(ctx context.Context, id int64) (*model.EnrichedOrder, error) {
	return f.orders.Get(ctx, id)
}

func (f *OrderFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *OrderFacade) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListForUser(ctx, userID)
}

func (f *OrderFacade) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, input)
}
