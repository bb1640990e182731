// internal/domain/cart/entity.go
package cart

import (
	"math"

	"github.com/your-org/storefront-api/internal/domain/catalog"
)

// Item pairs a product with a quantity. A cart holds at most one item per
// distinct product identifier; quantity never falls below 1.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price × quantity for this line
func (i Item) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Totals represents derived cart totals. TotalPrice carries the raw sum;
// DisplayPrice is rounded to 2 decimal places for presentation only.
type Totals struct {
	TotalItems   int     `json:"total_items"`
	TotalPrice   float64 `json:"total_price"`
	DisplayPrice float64 `json:"display_price"`
}

// RoundPrice rounds a price to 2 decimal places for display. Stored state
// always keeps the unrounded value.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
