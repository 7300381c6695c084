package usecase

import (
	"context"

	"github.com/polkiloo/micromart/internal/domain/model"
	"github.com/polkiloo/micromart/internal/domain/repository"
)

// UserUseCase encapsulates directory record management.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Get returns the record by identifier.
func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// List returns records in insertion order; a non-nil active filters by the
// flag.
func (u *UserUseCase) List(ctx context.Context, active *bool) ([]model.User, error) {
	return u.users.List(ctx, active)
}

// Create registers a new record and assigns its identifier.
func (u *UserUseCase) Create(ctx context.Context, name, email string, active bool) (*model.User, error) {
	return u.users.Create(ctx, name, email, active)
}

// Delete removes the record and returns its last value.
func (u *UserUseCase) Delete(ctx context.Context, id int64) (*model.User, error) {
	return u.users.Delete(ctx, id)
}
