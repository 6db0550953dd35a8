package checkout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/qoozee/qoozee/internal/catalog"
)

var (
	// ErrTermsNotAccepted blocks checkout until the terms box is ticked.
	ErrTermsNotAccepted = errors.New("please agree to the terms and conditions")
	// ErrEmptyCart blocks checkout with nothing to order.
	ErrEmptyCart = errors.New("the cart is empty, add some products first")
)

// PaymentMethods are the labels offered on the checkout form.
var PaymentMethods = []string{"Cash on Delivery", "Credit/Debit Card", "UPI", "Net Banking"}

var validate = validator.New()

// ShippingForm is the checkout payload. The binding tags drive gin's request
// validation and the validate tags back the standalone Validate used by
// PlaceOrder.
type ShippingForm struct {
	Name          string `json:"name" binding:"required" validate:"required"`
	Email         string `json:"email" binding:"required,email" validate:"required,email"`
	Phone         string `json:"phone" binding:"required" validate:"required"`
	Address       string `json:"address" binding:"required" validate:"required"`
	City          string `json:"city" binding:"required" validate:"required"`
	Pincode       string `json:"pincode" binding:"required" validate:"required"`
	PaymentMethod string `json:"payment_method" binding:"required" validate:"required"`
	AcceptTerms   bool   `json:"accept_terms"`
}

// Validate reports the first missing or malformed field as a user-facing
// message, then checks the terms flag so its message can name it.
func (f *ShippingForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%s", ValidationMessage(err))
	}
	if !f.AcceptTerms {
		return ErrTermsNotAccepted
	}
	return nil
}

// ValidationMessage turns a validator error into a field-specific message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		if field == "paymentmethod" {
			field = "payment method"
		}
		return fmt.Sprintf("please provide a valid %s", field)
	}
	return err.Error()
}

// Order is an immutable snapshot taken at checkout. Items and Total are
// frozen copies; later catalog price changes do not affect past orders.
type Order struct {
	ID            int               `json:"order_id"`
	CreatedAt     time.Time         `json:"date"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	PaymentMethod string            `json:"payment_method"`
	Items         []catalog.Product `json:"items"`
	Total         float64           `json:"total"`
	DeliveryDate  time.Time         `json:"delivery_date"`
}

// PlaceOrder validates the form and synthesizes an order from the current
// cart snapshot. On any validation failure nothing is created and the
// caller's state stays untouched.
func PlaceOrder(form ShippingForm, items []catalog.Product, total float64) (Order, error) {
	if err := form.Validate(); err != nil {
		return Order{}, err
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	now := time.Now()
	return Order{
		ID:            100000 + rand.Intn(900000),
		CreatedAt:     now,
		Name:          form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		Address:       fmt.Sprintf("%s, %s - %s", form.Address, form.City, form.Pincode),
		PaymentMethod: form.PaymentMethod,
		Items:         append([]catalog.Product(nil), items...),
		Total:         total,
		DeliveryDate:  now.AddDate(0, 0, 3+rand.Intn(3)),
	}, nil
}

// Summary is the display-only price breakdown shown next to the form. The
// order total itself stays the plain item sum.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// NewSummary applies the storefront display rules: free shipping above 500,
// 18% GST rounded to two decimals.
func NewSummary(subtotal float64) Summary {
	shipping := 50.0
	if subtotal > 500 {
		shipping = 0
	}
	gst := math.Round(subtotal*0.18*100) / 100
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		GST:      gst,
		Total:    subtotal + shipping + gst,
	}
}
