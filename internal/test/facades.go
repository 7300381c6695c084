package test

import (
	"context"

	"github.com/polkiloo/micromart/internal/domain/model"
	"github.com/polkiloo/micromart/internal/usecase"
)

// DirectoryFacadeStub provides controllable behaviour for directory
// endpoints.
type DirectoryFacadeStub struct {
	UserFn   func(context.Context, int64) (*model.User, error)
	UsersFn  func(context.Context, *bool) ([]model.User, error)
	CreateFn func(context.Context, string, string, bool) (*model.User, error)
	DeleteFn func(context.Context, int64) (*model.User, error)
}

// User delegates to the provided function or returns a default record.
func (s DirectoryFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Name: "Alice Johnson", Email: "alice@example.com", Active: true}, nil
}

// Users returns predefined records.
func (s DirectoryFacadeStub) Users(ctx context.Context, active *bool) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, active)
	}
	return []model.User{{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Active: true}}, nil
}

// CreateUser delegates to the provided function or echoes the input.
func (s DirectoryFacadeStub) CreateUser(ctx context.Context, name, email string, active bool) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, active)
	}
	return &model.User{ID: 1, Name: name, Email: email, Active: active}, nil
}

// DeleteUser delegates to the provided function or returns a default record.
func (s DirectoryFacadeStub) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return &model.User{ID: id, Name: "Alice Johnson", Email: "alice@example.com", Active: true}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrderFn         func(context.Context, int64) (*model.EnrichedOrder, error)
	OrdersFn        func(context.Context) ([]model.Order, error)
	OrdersForUserFn func(context.Context, int64) ([]model.Order, error)
	CreateFn        func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
}

// Order delegates to the provided function or returns an enriched default.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.EnrichedOrder, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.EnrichedOrder{
		Order: model.Order{ID: id, UserID: 1, Product: "Laptop", Quantity: 1, Total: 1200, Status: model.OrderStatusCompleted},
		User:  model.FoundUser(&model.User{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Active: true}),
	}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, UserID: 1, Product: "Laptop", Quantity: 1, Total: 1200, Status: model.OrderStatusCompleted}}, nil
}

// OrdersForUser returns predefined orders for the given user.
func (s OrderFacadeStub) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersForUserFn != nil {
		return s.OrdersForUserFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Product: "Laptop", Quantity: 1, Total: 1200, Status: model.OrderStatusCompleted}}, nil
}

// CreateOrder delegates to the provided function or echoes the input.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return &model.Order{ID: 4, UserID: input.UserID, Product: input.Product, Quantity: quantity, Total: input.Total, Status: model.OrderStatusPending}, nil
}
