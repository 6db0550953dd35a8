package catalog

import "strings"

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// Search filters products, preserving catalog order. Category match is
// case-insensitive exact with "all" (or empty) meaning no filter. The price
// filter only excludes products strictly above the ceiling, and a ceiling of
// zero disables it entirely; zero is indistinguishable from "no limit",
// matching the browse slider's behaviour. The term matches the product name
// by case-insensitive containment.
//
// A non-numeric price only surfaces as an error when a price filter is
// active, since that is the first point the number is needed.
func Search(products []Product, category string, maxPrice float64, term string) ([]Product, error) {
	var filtered []Product
	for _, p := range products {
		if category != "" && !strings.EqualFold(category, CategoryAll) && !strings.EqualFold(p.Category, category) {
			continue
		}
		if maxPrice > 0 {
			price, err := p.PriceValue()
			if err != nil {
				return nil, err
			}
			if price > maxPrice {
				continue
			}
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}
