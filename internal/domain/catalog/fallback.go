// internal/domain/catalog/fallback.go
package catalog

// sampleProducts is the fixed fallback catalog substituted when the upstream
// API stays unreachable after all retry attempts. Eight products across two
// categories, enough to keep every storefront page renderable offline.
var sampleProducts = []Product{
	{
		ID:          1,
		Title:       "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops",
		Price:       109.95,
		Description: "Your perfect pack for everyday use and walks in the forest. Stash your laptop (up to 15 inches) in the padded sleeve, your everyday",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Rating:      Rating{Rate: 3.9, Count: 120},
	},
	{
		ID:          2,
		Title:       "Mens Casual Premium Slim Fit T-Shirts",
		Price:       22.3,
		Description: "Slim-fitting style, contrast raglan long sleeve, three-button henley placket, light weight & soft fabric for breathable and comfortable wearing.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
		Rating:      Rating{Rate: 4.1, Count: 259},
	},
	{
		ID:          3,
		Title:       "Mens Cotton Jacket",
		Price:       55.99,
		Description: "great outerwear jackets for Spring/Autumn/Winter, suitable for many occasions, such as working, hiking, camping, mountain/rock climbing, cycling, traveling or other outdoors.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71li-ujtlUL._AC_UX679_.jpg",
		Rating:      Rating{Rate: 4.7, Count: 500},
	},
	{
		ID:          4,
		Title:       "Mens Casual Slim Fit",
		Price:       15.99,
		Description: "The color could be slightly different between on the screen and in practice. / Please note that body builds vary by person, therefore, detailed size information should be reviewed below on the product description.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71YXzeOuslL._AC_UY879_.jpg",
		Rating:      Rating{Rate: 2.1, Count: 430},
	},
	{
		ID:          5,
		Title:       "John Hardy Women's Legends Naga Gold & Silver Dragon Station Chain Bracelet",
		Price:       695,
		Description: "From our Legends Collection, the Naga was inspired by the mythical water dragon that protects the ocean's pearl. Wear facing inward to be bestowed with love and abundance, or outward for protection.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg",
		Rating:      Rating{Rate: 4.6, Count: 400},
	},
	{
		ID:          6,
		Title:       "Solid Gold Petite Micropave",
		Price:       168,
		Description: "Satisfaction Guaranteed. Return or exchange any order within 30 days.Designed and sold by Hafeez Center in the United States.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/61sbMiUnoGL._AC_UL640_QL65_ML3_.jpg",
		Rating:      Rating{Rate: 3.9, Count: 70},
	},
	{
		ID:          7,
		Title:       "White Gold Plated Princess",
		Price:       9.99,
		Description: "Classic Created Wedding Engagement Solitaire Diamond Promise Ring for Her. Gifts to spoil your love more for Engagement, Wedding, Anniversary, Valentine's Day...",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/71YAIFU48IL._AC_UL640_QL65_ML3_.jpg",
		Rating:      Rating{Rate: 3, Count: 400},
	},
	{
		ID:          8,
		Title:       "Pierced Owl Rose Gold Plated Stainless Steel Double",
		Price:       10.99,
		Description: "Rose Gold Plated Double Flared Tunnel Plug Earrings. Made of 316L Stainless Steel",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/51UDEzMJVpL._AC_UL640_QL65_ML3_.jpg",
		Rating:      Rating{Rate: 1.9, Count: 100},
	},
}

// SampleProducts returns a copy of the fallback catalog, truncated to limit
// when limit is positive.
func SampleProducts(limit int) []Product {
	products := make([]Product, len(sampleProducts))
	copy(products, sampleProducts)

	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	return products
}

// SampleCategories returns the category labels present in the fallback
// catalog, in first-seen order.
func SampleCategories() []string {
	seen := make(map[string]bool)
	var categories []string

	for _, p := range sampleProducts {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return categories
}

// SampleProductsByCategory filters the fallback catalog to an exact
// category match.
func SampleProductsByCategory(category string) []Product {
	var products []Product

	for _, p := range sampleProducts {
		if p.Category == category {
			products = append(products, p)
		}
	}

	return products
}

// SampleProduct looks up a single product in the fallback catalog
func SampleProduct(id int) (Product, bool) {
	for _, p := range sampleProducts {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
