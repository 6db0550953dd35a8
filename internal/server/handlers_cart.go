package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (s *Server) showCart(c *gin.Context) {
	sess := currentSession(c)
	items, total := sess.CartItems(s.catalog.Products(c.Request.Context()))
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"count": len(items),
	})
}

func (s *Server) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	product, ok := s.catalog.Lookup(c.Request.Context(), req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	sess := currentSession(c)
	if !sess.AddToCart(product.ID) {
		c.JSON(http.StatusConflict, gin.H{"error": "product already in cart"})
		return
	}
	sess.RecordAdded(product.Name)

	c.JSON(http.StatusCreated, gin.H{
		"added": product,
		"cart":  sess.Cart,
	})
}

func (s *Server) removeFromCart(c *gin.Context) {
	id := c.Param("id")

	sess := currentSession(c)
	if !sess.RemoveFromCart(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not in cart"})
		return
	}
	// The id may no longer resolve; log the name only when it does.
	if product, ok := s.catalog.Lookup(c.Request.Context(), id); ok {
		sess.RecordRemoved(product.Name)
	}

	c.JSON(http.StatusOK, gin.H{"cart": sess.Cart})
}
