package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qoozee/qoozee/internal/catalog"
)

// browseCatalog filters the catalog by the optional category, max_price and
// q query parameters, logging each shown product as viewed.
func (s *Server) browseCatalog(c *gin.Context) {
	products := s.catalog.Products(c.Request.Context())

	maxPrice := 0.0
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a number"})
			return
		}
		maxPrice = v
	}

	filtered, err := catalog.Search(products, c.Query("category"), maxPrice, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess := currentSession(c)
	for _, p := range filtered {
		sess.RecordView(p)
	}

	resp := gin.H{
		"products": filtered,
		"count":    len(filtered),
	}
	if notice := s.catalog.Notice(); notice != "" {
		resp["notice"] = notice
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": s.catalog.Categories(c.Request.Context()),
	})
}
