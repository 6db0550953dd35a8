package compare

import (
	"errors"

	"github.com/qoozee/qoozee/internal/catalog"
)

// ErrNotFound means one or both product names failed to resolve against the
// catalog.
var ErrNotFound = errors.New("one or both products not found")

// Reasons attached to a comparison verdict, in decision order.
const (
	ReasonValueRatio = "better rating-to-price ratio"
	ReasonRating     = "higher rating"
	ReasonPrice      = "lower price"
)

// Result names the two resolved products and the winner.
type Result struct {
	First  catalog.Product `json:"first"`
	Second catalog.Product `json:"second"`
	Winner catalog.Product `json:"winner"`
	Reason string          `json:"reason"`
}

// Compare resolves both names against the catalog (first case-insensitive
// containment match, in catalog order) and picks the better buy. The
// decision chain is value ratio (rating over price), then rating, then
// price; an exact tie on everything resolves to the first product.
func Compare(nameA, nameB string, products []catalog.Product) (Result, error) {
	first, ok := catalog.FindByName(products, nameA)
	if !ok {
		return Result{}, ErrNotFound
	}
	second, ok := catalog.FindByName(products, nameB)
	if !ok {
		return Result{}, ErrNotFound
	}

	ratingA, err := first.RatingValue()
	if err != nil {
		return Result{}, err
	}
	priceA, err := first.PriceValue()
	if err != nil {
		return Result{}, err
	}
	ratingB, err := second.RatingValue()
	if err != nil {
		return Result{}, err
	}
	priceB, err := second.PriceValue()
	if err != nil {
		return Result{}, err
	}

	res := Result{First: first, Second: second}

	ratioA := ratingA / priceA
	ratioB := ratingB / priceB

	switch {
	case ratioA > ratioB:
		res.Winner, res.Reason = first, ReasonValueRatio
	case ratioB > ratioA:
		res.Winner, res.Reason = second, ReasonValueRatio
	case ratingA > ratingB:
		res.Winner, res.Reason = first, ReasonRating
	case ratingB > ratingA:
		res.Winner, res.Reason = second, ReasonRating
	case priceB < priceA:
		res.Winner, res.Reason = second, ReasonPrice
	default:
		// Exact tie still picks a side: the first product.
		res.Winner, res.Reason = first, ReasonPrice
	}

	return res, nil
}
