// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/session"
	"github.com/your-org/storefront-api/internal/pkg/retry"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart
var ErrEmptyCart = errors.New("cart is empty")

// Service simulates order placement: a fixed processing delay, an order
// number, and a cleared cart. Orders are not persisted anywhere.
type Service struct {
	delay time.Duration
	sleep retry.SleepFunc
	now   func() time.Time
}

// NewService creates a checkout service from configuration
func NewService(cfg config.CheckoutConfig) *Service {
	return &Service{
		delay: cfg.ProcessingDelay,
		sleep: retry.Sleep,
		now:   time.Now,
	}
}

// Order represents a completed (simulated) checkout
type Order struct {
	OrderNumber string        `json:"order_number"`
	User        *session.User `json:"user"`
	Items       []cart.Item   `json:"items"`
	Totals      cart.Totals   `json:"totals"`
	PlacedAt    time.Time     `json:"placed_at"`
}

// Checkout places a simulated order for the given cart and clears it.
// The caller is responsible for ensuring the session is logged in; the
// processing delay honors context cancellation.
func (s *Service) Checkout(ctx context.Context, user *session.User, cartStore *cart.Store) (*Order, error) {
	items := cartStore.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := cartStore.Totals()

	// Simulated payment processing
	if err := s.sleep(ctx, s.delay); err != nil {
		return nil, fmt.Errorf("checkout canceled: %w", err)
	}

	order := &Order{
		OrderNumber: uuid.New().String(),
		User:        user,
		Items:       items,
		Totals:      totals,
		PlacedAt:    s.now().UTC(),
	}

	if err := cartStore.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	return order, nil
}
