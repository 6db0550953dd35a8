package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Product is one catalog row. Fields stay verbatim as text; numeric coercion
// happens at point of use so a malformed row only fails the operations that
// need the number.
type Product struct {
	ID       string `json:"product_id"`
	Name     string `json:"product_name"`
	Price    string `json:"price"`
	Rating   string `json:"rating"`
	Category string `json:"category"`
}

// PriceValue coerces the price text to a number.
func (p Product) PriceValue() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Price), 64)
	if err != nil {
		return 0, fmt.Errorf("product %s has non-numeric price %q", p.ID, p.Price)
	}
	return v, nil
}

// RatingValue coerces the rating text to a number.
func (p Product) RatingValue() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Rating), 64)
	if err != nil {
		return 0, fmt.Errorf("product %s has non-numeric rating %q", p.ID, p.Rating)
	}
	return v, nil
}

// SampleProducts returns the built-in demo catalog served when no product
// file is available.
func SampleProducts() []Product {
	return []Product{
		{ID: "101", Name: "Oversized Hoodie - Pink", Price: "999", Rating: "4.5", Category: "Clothing"},
		{ID: "102", Name: "Smartphone Stand", Price: "499", Rating: "4.2", Category: "Electronics"},
		{ID: "103", Name: "Coffee Mug - Ceramic", Price: "299", Rating: "4.8", Category: "Home Decor"},
		{ID: "104", Name: "Wireless Earbuds", Price: "1499", Rating: "4.6", Category: "Electronics"},
		{ID: "105", Name: "Throw Pillow Cover", Price: "399", Rating: "4.3", Category: "Home Decor"},
		{ID: "106", Name: "Denim Jacket", Price: "1299", Rating: "4.4", Category: "Clothing"},
	}
}

// FindByName returns the first product, in catalog order, whose name
// contains the given substring, case-insensitively.
func FindByName(products []Product, name string) (Product, bool) {
	needle := strings.ToLower(name)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, true
		}
	}
	return Product{}, false
}
