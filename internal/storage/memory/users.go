package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/micromart/internal/domain/errors"
	"github.com/polkiloo/micromart/internal/domain/model"
)

// UserStore keeps directory users in process memory for the service
// lifetime. All mutation happens under a single mutex; identifier
// allocation is atomic with the insertion it precedes.
type UserStore struct {
	mu       sync.Mutex
	users    map[int64]model.User
	inserted []int64
}

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]model.User)}
}

// Create inserts a record under the next free identifier.
func (s *UserStore) Create(ctx context.Context, name, email string, active bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{ID: nextID(s.users), Name: name, Email: email, Active: active}
	s.users[u.ID] = u
	s.inserted = append(s.inserted, u.ID)
	return &u, nil
}

// GetByID returns the record or ErrNotFound.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &u, nil
}

// List returns records in insertion order, optionally filtered by the
// active flag.
func (s *UserStore) List(ctx context.Context, active *bool) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.User, 0, len(s.inserted))
	for _, id := range s.inserted {
		u := s.users[id]
		if active != nil && u.Active != *active {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

// Delete removes the record and returns its last value, or ErrNotFound.
func (s *UserStore) Delete(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.users, id)
	for i, got := range s.inserted {
		if got == id {
			s.inserted = append(s.inserted[:i], s.inserted[i+1:]...)
			break
		}
	}
	return &u, nil
}
