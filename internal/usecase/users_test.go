package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/micromart/internal/domain/errors"
	"github.com/polkiloo/micromart/internal/storage/memory"
)

func seededUsers(t *testing.T) *memory.UserStore {
	t.Helper()
	store := memory.NewUserStore()
	if err := memory.SeedUsers(context.Background(), store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return store
}

func TestUserUseCaseGet(t *testing.T) {
	uc := NewUserUseCase(seededUsers(t))

	u, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Alice Johnson" || u.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := uc.Get(context.Background(), 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserUseCaseListWithFilter(t *testing.T) {
	uc := NewUserUseCase(seededUsers(t))

	all, err := uc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}

	active := true
	filtered, err := uc.List(context.Background(), &active)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 active users, got %d", len(filtered))
	}
}

func TestUserUseCaseCreateAssignsIdentifier(t *testing.T) {
	uc := NewUserUseCase(seededUsers(t))

	u, err := uc.Create(context.Background(), "Dora Lane", "dora@example.com", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 4 {
		t.Fatalf("expected id 4, got %d", u.ID)
	}
}

func TestUserUseCaseDelete(t *testing.T) {
	uc := NewUserUseCase(seededUsers(t))

	deleted, err := uc.Delete(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Name != "Bob Smith" {
		t.Fatalf("unexpected deleted user: %+v", deleted)
	}

	if _, err := uc.Delete(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
