package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qoozee/qoozee/internal/checkout"
)

// placeOrder runs the Shopping to Confirmed transition: the form must
// validate and terms must be accepted, otherwise the session stays exactly
// as it was.
func (s *Server) placeOrder(c *gin.Context) {
	var form checkout.ShippingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": checkout.ValidationMessage(err)})
		return
	}

	sess := currentSession(c)
	items, total := sess.CartItems(s.catalog.Products(c.Request.Context()))

	order, err := checkout.PlaceOrder(form, items, total)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	sess.CompleteCheckout(order)

	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"summary": checkout.NewSummary(order.Total),
	})
}

// continueShopping is the manual Confirmed to Shopping transition. Order
// history is untouched.
func (s *Server) continueShopping(c *gin.Context) {
	sess := currentSession(c)
	sess.CheckoutDone = false
	c.JSON(http.StatusOK, gin.H{"status": "shopping"})
}

func (s *Server) listOrders(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"orders": sess.Orders,
		"count":  len(sess.Orders),
	})
}

func (s *Server) latestOrder(c *gin.Context) {
	sess := currentSession(c)
	if len(sess.Orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no orders placed yet"})
		return
	}
	latest := sess.Orders[len(sess.Orders)-1]
	c.JSON(http.StatusOK, gin.H{
		"order":   latest,
		"summary": checkout.NewSummary(latest.Total),
	})
}
