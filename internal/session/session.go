package session

import (
	"github.com/google/uuid"

	"github.com/qoozee/qoozee/internal/catalog"
	"github.com/qoozee/qoozee/internal/checkout"
)

// Behavior is the passive per-session activity log surfaced on the
// diagnostics panel. Business logic never reads it.
type Behavior struct {
	ViewedCategories  map[string]struct{} `json:"viewed_categories"`
	ViewedProducts    []string            `json:"viewed_products"`
	AddedProducts     []string            `json:"added_products"`
	RemovedProducts   []string            `json:"removed_products"`
	ComparedProducts  [][2]string         `json:"compared_products"`
	PurchasedProducts []string            `json:"purchased_products"`
}

// Session holds everything mutable for one shopper: the cart, order history,
// activity log and the checkout flag. It lives in the session store and is
// only ever touched by one request at a time.
type Session struct {
	ID           string           `json:"id"`
	Cart         []string         `json:"cart"`
	Behavior     Behavior         `json:"behavior"`
	Orders       []checkout.Order `json:"orders"`
	CheckoutDone bool             `json:"checkout_done"`
}

// New creates a blank session with a fresh id.
func New() *Session {
	return &Session{
		ID:       uuid.NewString(),
		Cart:     []string{},
		Behavior: Behavior{ViewedCategories: map[string]struct{}{}},
	}
}

// AddToCart appends the product id unless it is already present. The UI
// disables the add button for carted items; this makes that gate explicit.
func (s *Session) AddToCart(id string) bool {
	for _, existing := range s.Cart {
		if existing == id {
			return false
		}
	}
	s.Cart = append(s.Cart, id)
	return true
}

// RemoveFromCart removes the first occurrence of the id, preserving the
// order of the remaining items.
func (s *Session) RemoveFromCart(id string) bool {
	for i, existing := range s.Cart {
		if existing == id {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return true
		}
	}
	return false
}

// CartItems resolves the cart against the catalog. Ids that no longer
// resolve are skipped silently, and the total only counts items with a
// parseable price.
func (s *Session) CartItems(products []catalog.Product) ([]catalog.Product, float64) {
	lookup := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		lookup[p.ID] = p
	}

	var items []catalog.Product
	var total float64
	for _, id := range s.Cart {
		p, ok := lookup[id]
		if !ok {
			continue
		}
		items = append(items, p)
		if price, err := p.PriceValue(); err == nil {
			total += price
		}
	}
	return items, total
}

// CompleteCheckout applies a successful order: history gets the order, the
// cart empties, purchases are logged and the confirmation view takes over.
func (s *Session) CompleteCheckout(order checkout.Order) {
	s.Orders = append(s.Orders, order)
	s.Cart = []string{}
	for _, item := range order.Items {
		s.Behavior.PurchasedProducts = append(s.Behavior.PurchasedProducts, item.Name)
	}
	s.CheckoutDone = true
}

// RecordView logs a product impression.
func (s *Session) RecordView(p catalog.Product) {
	if s.Behavior.ViewedCategories == nil {
		s.Behavior.ViewedCategories = map[string]struct{}{}
	}
	if p.Category != "" {
		s.Behavior.ViewedCategories[p.Category] = struct{}{}
	}
	s.Behavior.ViewedProducts = append(s.Behavior.ViewedProducts, p.Name)
}

// RecordAdded logs a cart addition.
func (s *Session) RecordAdded(name string) {
	s.Behavior.AddedProducts = append(s.Behavior.AddedProducts, name)
}

// RecordRemoved logs a cart removal.
func (s *Session) RecordRemoved(name string) {
	s.Behavior.RemovedProducts = append(s.Behavior.RemovedProducts, name)
}

// RecordCompared logs a comparison pair.
func (s *Session) RecordCompared(first, second string) {
	s.Behavior.ComparedProducts = append(s.Behavior.ComparedProducts, [2]string{first, second})
}

// ClearOrders empties the order history. Administrative action only.
func (s *Session) ClearOrders() {
	s.Orders = nil
}

// Reset wipes everything except the id, so the cookie keeps working.
func (s *Session) Reset() {
	s.Cart = []string{}
	s.Behavior = Behavior{ViewedCategories: map[string]struct{}{}}
	s.Orders = nil
	s.CheckoutDone = false
}
