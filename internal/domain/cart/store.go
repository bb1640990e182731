// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/infrastructure/storage"
)

// Store owns one cart: an insertion-ordered sequence of line items.
// It restores its contents from durable storage at construction and
// persists on every mutation; the in-memory state stays authoritative for
// readers regardless of persistence completion. The mutex makes each
// mutation atomic with respect to concurrent handlers.
//
// The Store does not check login state. That boundary belongs to the HTTP
// layer, which gates the mutating routes.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage storage.Store
	key     string
}

// NewStore creates a cart store bound to a storage key, restoring any
// previously persisted cart.
func NewStore(ctx context.Context, st storage.Store, key string) (*Store, error) {
	s := &Store{
		storage: st,
		key:     key,
	}

	var items []Item
	found, err := st.Load(ctx, key, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to restore cart: %w", err)
	}
	if found {
		s.items = items
	}

	return s, nil
}

// AddItem merges the product into the cart: an existing line for the same
// product identifier has its quantity incremented by 1, otherwise a new
// line with quantity 1 is appended.
func (s *Store) AddItem(ctx context.Context, product catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			merged = true
			break
		}
	}

	if !merged {
		s.items = append(s.items, Item{Product: product, Quantity: 1})
	}

	return s.persist(ctx)
}

// RemoveItem deletes the line for the given product identifier; unknown
// identifiers are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}

	return nil
}

// UpdateQuantity sets the quantity of an existing line. Quantities below 1
// are clamped to 1 rather than removing the line; removal is RemoveItem's
// job. Unknown identifiers are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			return s.persist(ctx)
		}
	}

	return nil
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// Items returns a copy of the cart's line items in insertion order
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems returns the sum of quantities across all lines
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price × quantity across all lines.
// Derived on every call, never cached.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// Totals returns the derived totals in one shot
func (s *Store) Totals() Totals {
	price := s.TotalPrice()
	return Totals{
		TotalItems:   s.TotalItems(),
		TotalPrice:   price,
		DisplayPrice: RoundPrice(price),
	}
}

// persist writes the current items to durable storage. Callers hold the
// mutex. A failed write leaves the in-memory state mutated; the error is
// reported so the caller can log it.
func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []Item{}
	}

	if err := s.storage.Save(ctx, s.key, items); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	return nil
}
