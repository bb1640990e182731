// internal/domain/catalog/entity.go
package catalog

// Product represents a product as served by the upstream catalog API.
// Products are immutable once fetched; they are never written back upstream.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating represents the aggregate review score of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Normalize defends against malformed upstream payloads. Every field the
// storefront renders gets a safe default instead of propagating a broken
// value into the view layer.
func (p *Product) Normalize() {
	if p.Title == "" {
		p.Title = "Untitled Product"
	}
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Rating.Rate < 0 {
		p.Rating.Rate = 0
	}
	if p.Rating.Rate > 5 {
		p.Rating.Rate = 5
	}
	if p.Rating.Count < 0 {
		p.Rating.Count = 0
	}
}
