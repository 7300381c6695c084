package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/micromart/internal/domain/errors"
	"github.com/polkiloo/micromart/internal/domain/model"
)

// OrderStore keeps orders in process memory for the service lifetime. The
// store exposes no delete, so an allocated identifier is never reused.
type OrderStore struct {
	mu       sync.Mutex
	orders   map[int64]model.Order
	inserted []int64
}

// NewOrderStore creates an empty store.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[int64]model.Order)}
}

// Create inserts the order under the next free identifier and returns the
// stored record.
func (s *OrderStore) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = nextID(s.orders)
	s.orders[order.ID] = order
	s.inserted = append(s.inserted, order.ID)
	return &order, nil
}

// GetByID returns the order or ErrNotFound.
func (s *OrderStore) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

// ListByUser returns the user's orders in insertion order; an empty result
// is not an error.
func (s *OrderStore) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Order, 0)
	for _, id := range s.inserted {
		if o := s.orders[id]; o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListAll snapshots the whole store in insertion order.
func (s *OrderStore) ListAll(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Order, 0, len(s.inserted))
	for _, id := range s.inserted {
		result = append(result, s.orders[id])
	}
	return result, nil
}

// nextID allocates max(existing)+1, or 1 for an empty map. Callers must
// hold the store mutex.
func nextID[V any](records map[int64]V) int64 {
	var max int64
	for id := range records {
		if id > max {
			max = id
		}
	}
	return max + 1
}
