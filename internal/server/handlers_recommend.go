package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qoozee/qoozee/internal/advisor"
	"github.com/qoozee/qoozee/internal/catalog"
)

type recommendRequest struct {
	Persona  string  `json:"persona"`
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
}

type askRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// recommend builds a persona prompt over the filtered catalog and asks the
// advisor. Advisor failures are invisible; the fallback text comes back with
// source "fallback".
func (s *Server) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products := s.catalog.Products(c.Request.Context())
	prompt, err := advisor.PersonaPrompt(products, req.Persona, req.Category, req.Budget)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := s.advisor.Ask(c.Request.Context(), prompt)
	c.JSON(http.StatusOK, gin.H{
		"recommendation": resp.Text,
		"source":         resp.Source,
	})
}

// recommendFromCart asks the advisor to pick complements for the current
// cart from the rest of the catalog.
func (s *Server) recommendFromCart(c *gin.Context) {
	sess := currentSession(c)
	products := s.catalog.Products(c.Request.Context())

	items, _ := sess.CartItems(products)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "the cart is empty, add some products first"})
		return
	}

	inCart := make(map[string]struct{}, len(sess.Cart))
	for _, id := range sess.Cart {
		inCart[id] = struct{}{}
	}
	var others []catalog.Product
	for _, p := range products {
		if _, ok := inCart[p.ID]; !ok {
			others = append(others, p)
		}
	}

	resp := s.advisor.Ask(c.Request.Context(), advisor.CartPrompt(items, others))
	c.JSON(http.StatusOK, gin.H{
		"recommendation": resp.Text,
		"source":         resp.Source,
	})
}

// ask passes a free-form question straight to the advisor.
func (s *Server) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	resp := s.advisor.Ask(c.Request.Context(), req.Prompt)
	c.JSON(http.StatusOK, gin.H{
		"answer": resp.Text,
		"source": resp.Source,
	})
}
