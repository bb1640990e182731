// internal/domain/cart/manager.go
package cart

import (
	"context"
	"sync"

	"github.com/your-org/storefront-api/internal/infrastructure/storage"
)

// Namespace is the fixed storage namespace for cart entries
const Namespace = "cart:"

// Manager hands out one cart Store per client session, restoring each from
// durable storage on first access.
type Manager struct {
	mu      sync.Mutex
	storage storage.Store
	stores  map[string]*Store
}

// NewManager creates a cart manager over the given storage
func NewManager(st storage.Store) *Manager {
	return &Manager{
		storage: st,
		stores:  make(map[string]*Store),
	}
}

// ForSession returns the cart store for a client session, creating and
// restoring it on first access.
func (m *Manager) ForSession(ctx context.Context, sessionID string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store, nil
	}

	store, err := NewStore(ctx, m.storage, Namespace+sessionID)
	if err != nil {
		return nil, err
	}

	m.stores[sessionID] = store
	return store, nil
}
