package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qoozee/qoozee/internal/catalog"
)

func validForm() ShippingForm {
	return ShippingForm{
		Name:          "Spoorthi",
		Email:         "spoorthi@example.com",
		Phone:         "9876543210",
		Address:       "42 Rose Street",
		City:          "Bengaluru",
		Pincode:       "560001",
		PaymentMethod: "Cash on Delivery",
		AcceptTerms:   true,
	}
}

func cartSnapshot() []catalog.Product {
	return catalog.SampleProducts()[:2]
}

func TestPlaceOrderSynthesizesOrder(t *testing.T) {
	before := time.Now()
	order, err := PlaceOrder(validForm(), cartSnapshot(), 1498)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, order.ID, 100000)
	assert.LessOrEqual(t, order.ID, 999999)
	assert.Equal(t, "42 Rose Street, Bengaluru - 560001", order.Address)
	assert.Equal(t, "Cash on Delivery", order.PaymentMethod)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 1498.0, order.Total)

	days := order.DeliveryDate.Sub(order.CreatedAt).Hours() / 24
	assert.GreaterOrEqual(t, days, 2.9)
	assert.LessOrEqual(t, days, 5.1)
	assert.False(t, order.CreatedAt.Before(before))
}

func TestPlaceOrderDeliveryWindowStaysInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		order, err := PlaceOrder(validForm(), cartSnapshot(), 1498)
		require.NoError(t, err)

		offset := order.DeliveryDate.Sub(order.CreatedAt)
		assert.GreaterOrEqual(t, offset, 71*time.Hour)
		assert.LessOrEqual(t, offset, 121*time.Hour)
	}
}

func TestPlaceOrderItemsAreASnapshot(t *testing.T) {
	items := cartSnapshot()
	order, err := PlaceOrder(validForm(), items, 1498)
	require.NoError(t, err)

	items[0].Price = "1"
	assert.Equal(t, "999", order.Items[0].Price)
}

func TestPlaceOrderMissingFieldFails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShippingForm)
	}{
		{name: "name", mutate: func(f *ShippingForm) { f.Name = "" }},
		{name: "email", mutate: func(f *ShippingForm) { f.Email = "" }},
		{name: "phone", mutate: func(f *ShippingForm) { f.Phone = "" }},
		{name: "address", mutate: func(f *ShippingForm) { f.Address = "" }},
		{name: "city", mutate: func(f *ShippingForm) { f.City = "" }},
		{name: "pincode", mutate: func(f *ShippingForm) { f.Pincode = "" }},
		{name: "payment method", mutate: func(f *ShippingForm) { f.PaymentMethod = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := PlaceOrder(form, cartSnapshot(), 1498)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "please provide a valid")
		})
	}
}

func TestPlaceOrderBadEmailFails(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"

	_, err := PlaceOrder(form, cartSnapshot(), 1498)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

// Unchecked terms never create an order, no matter how complete the form is.
func TestPlaceOrderUnacceptedTermsFails(t *testing.T) {
	form := validForm()
	form.AcceptTerms = false

	_, err := PlaceOrder(form, cartSnapshot(), 1498)
	assert.ErrorIs(t, err, ErrTermsNotAccepted)
}

func TestPlaceOrderEmptyCartFails(t *testing.T) {
	_, err := PlaceOrder(validForm(), nil, 0)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewSummary(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		shipping float64
		gst      float64
	}{
		{name: "free shipping above 500", subtotal: 1000, shipping: 0, gst: 180},
		{name: "shipping charged at 500", subtotal: 500, shipping: 50, gst: 90},
		{name: "rounded gst", subtotal: 299, shipping: 50, gst: 53.82},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := NewSummary(tt.subtotal)
			assert.Equal(t, tt.subtotal, sum.Subtotal)
			assert.Equal(t, tt.shipping, sum.Shipping)
			assert.Equal(t, tt.gst, sum.GST)
			assert.Equal(t, tt.subtotal+tt.shipping+tt.gst, sum.Total)
		})
	}
}
