package memory

import (
	"context"
	"fmt"
	"sync"

	"xyzbank/internal/domain"
)

// LedgerRepository is the in-memory client store. State lives for the
// process lifetime; nothing is persisted across restarts.
type LedgerRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	order   []string
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{clients: make(map[string]*domain.Client)}
}

func (r *LedgerRepository) AddClient(_ context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.NationalID]; ok {
		return fmt.Errorf("%w: a client with national id %s already exists", domain.ErrDuplicateKey, client.NationalID)
	}
	r.clients[client.NationalID] = client
	r.order = append(r.order, client.NationalID)
	return nil
}

func (r *LedgerRepository) FindByNationalID(_ context.Context, nationalID string) (*domain.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[nationalID]
	return client, ok
}

func (r *LedgerRepository) AllClients(_ context.Context) []*domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.clients[id])
	}
	return out
}
