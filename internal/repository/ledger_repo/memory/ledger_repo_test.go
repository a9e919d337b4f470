package memory

import (
	"context"
	"errors"
	"testing"

	"xyzbank/internal/domain"
)

func newClient(t *testing.T, nationalID string) *domain.Client {
	t.Helper()
	c, err := domain.NewClient("Ana", "Diaz", nationalID, "ana@test.com")
	if err != nil {
		t.Fatalf("NewClient(%s) err=%v", nationalID, err)
	}
	return c
}

func TestAddClientDuplicateNationalID(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	if err := repo.AddClient(ctx, newClient(t, "123")); err != nil {
		t.Fatal(err)
	}
	if err := repo.AddClient(ctx, newClient(t, "123")); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}

	// the ledger still holds exactly one client with that id
	if got := len(repo.AllClients(ctx)); got != 1 {
		t.Fatalf("clients=%d want=1", got)
	}
}

func TestFindByNationalID(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	if _, ok := repo.FindByNationalID(ctx, "123"); ok {
		t.Fatal("found client in empty ledger")
	}

	want := newClient(t, "123")
	if err := repo.AddClient(ctx, want); err != nil {
		t.Fatal(err)
	}

	got, ok := repo.FindByNationalID(ctx, "123")
	if !ok || got != want {
		t.Fatalf("FindByNationalID got=%v ok=%v", got, ok)
	}
}

func TestAllClientsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	ids := []string{"30", "10", "20"}
	for _, id := range ids {
		if err := repo.AddClient(ctx, newClient(t, id)); err != nil {
			t.Fatal(err)
		}
	}

	all := repo.AllClients(ctx)
	if len(all) != len(ids) {
		t.Fatalf("clients=%d want=%d", len(all), len(ids))
	}
	for i, id := range ids {
		if all[i].NationalID != id {
			t.Fatalf("position %d: got %s want %s", i, all[i].NationalID, id)
		}
	}
}
