package repository

import (
	"context"

	"github.com/polkiloo/micromart/internal/domain/model"
)

// UserRepository describes storage operations for directory users.
type UserRepository interface {
	Create(ctx context.Context, name, email string, active bool) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, active *bool) ([]model.User, error)
	Delete(ctx context.Context, id int64) (*model.User, error)
}
