package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/micromart/internal/domain/errors"
	"github.com/polkiloo/micromart/internal/domain/model"
	"github.com/polkiloo/micromart/internal/domain/repository"
)

// LookupProvider resolves user identifiers against the directory service.
type LookupProvider interface {
	Lookup(ctx context.Context, id int64) model.UserLookup
}

// CreateOrderInput carries the fields of an order creation request.
// Quantity zero means "not supplied" and defaults to 1.
type CreateOrderInput struct {
	UserID   int64
	Product  string
	Quantity int64
	Total    float64
}

// OrderUseCase orchestrates order flows against the local store and the
// user directory dependency.
type OrderUseCase struct {
	orders repository.OrderRepository
	users  LookupProvider
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users LookupProvider) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users}
}

// Get returns the order enriched with its owner's current lookup outcome.
// A failed lookup degrades the embedded user field only; the read itself
// succeeds whenever the order exists.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.EnrichedOrder, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.EnrichedOrder{Order: *order, User: u.users.Lookup(ctx, order.UserID)}, nil
}

// ListAll snapshots the whole store without touching the directory.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// ListForUser gates the listing on the user's existence. Unlike Get, a
// directory failure here fails the whole request.
func (u *OrderUseCase) ListForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	switch u.users.Lookup(ctx, userID).Outcome {
	case model.LookupMissing:
		return nil, domainErrors.ErrUserNotFound
	case model.LookupUnavailable:
		return nil, domainErrors.ErrDirectoryUnavailable
	}
	return u.orders.ListByUser(ctx, userID)
}

// Create validates the owning user before inserting. The checks run
// entirely before the mutation, so a failed creation never leaves a partial
// order behind.
func (u *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	lookup := u.users.Lookup(ctx, input.UserID)
	switch lookup.Outcome {
	case model.LookupMissing:
		return nil, domainErrors.ErrUserNotFound
	case model.LookupUnavailable:
		return nil, domainErrors.ErrDirectoryUnavailable
	}
	if !lookup.User.Active {
		return nil, domainErrors.ErrUserInactive
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return u.orders.Create(ctx, model.Order{
		UserID:   input.UserID,
		Product:  input.Product,
		Quantity: quantity,
		Total:    input.Total,
		Status:   model.OrderStatusPending,
	})
}
