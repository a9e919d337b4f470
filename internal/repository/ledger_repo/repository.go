package ledger_repo

import (
	"context"

	"xyzbank/internal/domain"
)

// LedgerRepository is the store of registered clients. It enforces
// nationalId uniqueness; everything below the client level is owned by the
// clients themselves.
type LedgerRepository interface {
	// AddClient inserts a client, failing with domain.ErrDuplicateKey if a
	// client with the same nationalId is already registered.
	AddClient(ctx context.Context, client *domain.Client) error
	// FindByNationalID reports the matching client. Absence is a normal
	// outcome, not an error.
	FindByNationalID(ctx context.Context, nationalID string) (*domain.Client, bool)
	// AllClients returns every registered client in insertion order.
	AllClients(ctx context.Context) []*domain.Client
}
