package memory

import (
	"context"

	"github.com/polkiloo/micromart/internal/domain/model"
)

// SeedUsers loads the demo directory fixture: two active users and one
// inactive one.
func SeedUsers(ctx context.Context, store *UserStore) error {
	fixtures := []struct {
		name   string
		email  string
		active bool
	}{
		{"Alice Johnson", "alice@example.com", true},
		{"Bob Smith", "bob@example.com", true},
		{"Charlie Brown", "charlie@example.com", false},
	}
	for _, f := range fixtures {
		if _, err := store.Create(ctx, f.name, f.email, f.active); err != nil {
			return err
		}
	}
	return nil
}

// SeedOrders loads the demo order fixture referencing users 1 and 2.
func SeedOrders(ctx context.Context, store *OrderStore) error {
	fixtures := []model.Order{
		{UserID: 1, Product: "Laptop", Quantity: 1, Total: 1200.00, Status: model.OrderStatusCompleted},
		{UserID: 1, Product: "Mouse", Quantity: 2, Total: 50.00, Status: model.OrderStatusPending},
		{UserID: 2, Product: "Keyboard", Quantity: 1, Total: 80.00, Status: model.OrderStatusCompleted},
	}
	for _, f := range fixtures {
		if _, err := store.Create(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
