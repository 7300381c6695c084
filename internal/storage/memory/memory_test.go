package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainErrors "github.com/polkiloo/micromart/internal/domain/errors"
	"github.com/polkiloo/micromart/internal/domain/model"
	testhelpers "github.com/polkiloo/micromart/internal/test"
)

func TestUserStoreAllocatesSequentialIDs(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	for i, name := range []string{"Alice Johnson", "Bob Smith", "Charlie Brown"} {
		u, err := store.Create(ctx, name, "user@example.com", true)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if u.ID != int64(i+1) {
			t.Fatalf("expected id %d, got %d", i+1, u.ID)
		}
	}
}

func TestUserStoreDeleteAndReallocation(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		name := testhelpers.RandomASCIIString(4, 12)
		email := testhelpers.RandomASCIIString(4, 12) + "@example.com"
		if _, err := store.Create(ctx, name, email, true); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	deleted, err := store.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ID != 2 {
		t.Fatalf("expected deleted id 2, got %d", deleted.ID)
	}
	if _, err := store.GetByID(ctx, 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	// max(existing)+1 with ids {1,3} remaining allocates 4.
	u, err := store.Create(ctx, testhelpers.RandomASCIIString(4, 12), "user@example.com", true)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if u.ID != 4 {
		t.Fatalf("expected id 4, got %d", u.ID)
	}

	if _, err := store.Delete(ctx, 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found deleting twice, got %v", err)
	}
}

func TestUserStoreListFiltersAndPreservesOrder(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()
	if err := SeedUsers(ctx, store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	all, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}
	for i, u := range all {
		if u.ID != int64(i+1) {
			t.Fatalf("expected insertion order, got id %d at position %d", u.ID, i)
		}
	}

	active := true
	activeOnly, err := store.List(ctx, &active)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(activeOnly) != 2 {
		t.Fatalf("expected 2 active users, got %d", len(activeOnly))
	}
	for _, u := range activeOnly {
		if !u.Active {
			t.Fatalf("expected only active users, got %+v", u)
		}
	}

	inactive := false
	inactiveOnly, err := store.List(ctx, &inactive)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(inactiveOnly) != 1 || inactiveOnly[0].Name != "Charlie Brown" {
		t.Fatalf("unexpected inactive users: %+v", inactiveOnly)
	}
}

func TestOrderStoreAllocatesMonotonicIDs(t *testing.T) {
	store := NewOrderStore()
	ctx := context.Background()

	first, err := store.Create(ctx, model.Order{UserID: 1, Product: "Laptop", Quantity: 1, Total: 1200, Status: model.OrderStatusPending})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected id 1 for empty store, got %d", first.ID)
	}

	second, err := store.Create(ctx, model.Order{UserID: 2, Product: "Mouse", Quantity: 1, Total: 25, Status: model.OrderStatusPending})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("expected id %d, got %d", first.ID+1, second.ID)
	}
}

func TestOrderStoreConcurrentCreatesKeepIDsUnique(t *testing.T) {
	store := NewOrderStore()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	ids := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := store.Create(ctx, model.Order{UserID: 1, Product: "Cable", Quantity: 1, Total: 5, Status: model.OrderStatusPending})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			ids <- o.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("identifier %d allocated twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers {
		t.Fatalf("expected %d unique ids, got %d", workers, len(seen))
	}
}

func TestOrderStoreListByUser(t *testing.T) {
	store := NewOrderStore()
	ctx := context.Background()
	if err := SeedOrders(ctx, store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	mine, err := store.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 orders for user 1, got %d", len(mine))
	}
	if mine[0].Product != "Laptop" || mine[1].Product != "Mouse" {
		t.Fatalf("expected insertion order, got %+v", mine)
	}

	none, err := store.ListByUser(ctx, 99)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil result, got %+v", none)
	}
}

func TestOrderStoreGetByID(t *testing.T) {
	store := NewOrderStore()
	ctx := context.Background()
	if err := SeedOrders(ctx, store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	o, err := store.GetByID(ctx, 3)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if o.Product != "Keyboard" || o.UserID != 2 {
		t.Fatalf("unexpected order: %+v", o)
	}

	if _, err := store.GetByID(ctx, 42); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
