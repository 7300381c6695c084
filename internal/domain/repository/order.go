package repository

import (
	"context"

	"github.com/polkiloo/micromart/internal/domain/model"
)

// OrderRepository describes storage operations for orders. Create assigns
// the identifier; callers supply every other field.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
}
