package advisor

import (
	"fmt"
	"strings"

	"github.com/qoozee/qoozee/internal/catalog"
)

// Truncation limits keep prompts small enough for a local model.
const (
	personaProductLimit = 10
	complementLimit     = 5
)

// PersonaPrompt formats up to ten matching products into a recommendation
// request. No ranking happens here; the intelligence is delegated to the
// advisor.
func PersonaPrompt(products []catalog.Product, persona, category string, maxPrice float64) (string, error) {
	filtered, err := catalog.Search(products, category, maxPrice, "")
	if err != nil {
		return "", err
	}
	if len(filtered) == 0 {
		return "There are no products matching your criteria.", nil
	}
	if len(filtered) > personaProductLimit {
		filtered = filtered[:personaProductLimit]
	}

	var b strings.Builder
	b.WriteString("You are a smart shopping assistant helping someone find a product.\n")
	if persona != "" {
		fmt.Fprintf(&b, "The customer is: %s\n", persona)
	}
	b.WriteString("Here is a list of available products:\n\n")
	for _, p := range filtered {
		fmt.Fprintf(&b, "- %s | ₹%s | ⭐ %s | %s\n", p.Name, p.Price, p.Rating, p.Category)
	}
	b.WriteString("\nBased on the customer's needs and preferences, recommend the best product. ")
	b.WriteString("Explain why it's a good fit for them specifically.")

	return b.String(), nil
}

// CartPrompt asks the advisor to pick one or two complements for the current
// cart from up to five other catalog items.
func CartPrompt(cartItems, others []catalog.Product) string {
	if len(cartItems) == 0 {
		return "The cart is empty. Please add some products first."
	}
	if len(others) > complementLimit {
		others = others[:complementLimit]
	}

	cartLines := make([]string, 0, len(cartItems))
	for _, p := range cartItems {
		cartLines = append(cartLines, fmt.Sprintf("- %s | ₹%s | %s", p.Name, p.Price, p.Category))
	}
	otherLines := make([]string, 0, len(others))
	for _, p := range others {
		otherLines = append(otherLines, fmt.Sprintf("- %s | ₹%s | %s", p.Name, p.Price, p.Category))
	}

	return fmt.Sprintf(`Based on these items in the customer's cart:
%s

Suggest 1-2 of these products that would complement the cart items well:
%s

Explain why each suggestion pairs well with the existing cart items.
`, strings.Join(cartLines, "\n"), strings.Join(otherLines, "\n"))
}
