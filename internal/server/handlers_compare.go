package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qoozee/qoozee/internal/compare"
)

type compareRequest struct {
	First  string `json:"first" binding:"required"`
	Second string `json:"second" binding:"required"`
}

type compareQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

func (s *Server) compareProducts(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both product names are required"})
		return
	}
	s.runComparison(c, req.First, req.Second)
}

// compareQuery extracts two product names from a free-text question like
// "should i buy the hoodie or the blender?" and compares them.
func (s *Server) compareQuery(c *gin.Context) {
	var req compareQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	first, second, err := compare.ParseQuery(req.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "please mention exactly two products using 'or' or 'vs'",
		})
		return
	}
	s.runComparison(c, first, second)
}

func (s *Server) runComparison(c *gin.Context, first, second string) {
	products := s.catalog.Products(c.Request.Context())

	result, err := compare.Compare(first, second, products)
	if errors.Is(err, compare.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "one or both products not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess := currentSession(c)
	sess.RecordCompared(result.First.Name, result.Second.Name)

	c.JSON(http.StatusOK, result)
}
