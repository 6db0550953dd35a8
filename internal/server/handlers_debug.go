package server

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// behaviorLog surfaces the passive activity log on the diagnostics panel.
func (s *Server) behaviorLog(c *gin.Context) {
	sess := currentSession(c)
	b := sess.Behavior

	categories := make([]string, 0, len(b.ViewedCategories))
	for cat := range b.ViewedCategories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	c.JSON(http.StatusOK, gin.H{
		"viewed_categories":  categories,
		"viewed_products":    b.ViewedProducts,
		"added_products":     b.AddedProducts,
		"removed_products":   b.RemovedProducts,
		"compared_products":  b.ComparedProducts,
		"purchased_products": b.PurchasedProducts,
		"counts": gin.H{
			"viewed":    len(b.ViewedProducts),
			"added":     len(b.AddedProducts),
			"removed":   len(b.RemovedProducts),
			"compared":  len(b.ComparedProducts),
			"purchased": len(b.PurchasedProducts),
		},
	})
}

func (s *Server) clearOrders(c *gin.Context) {
	sess := currentSession(c)
	sess.ClearOrders()
	c.JSON(http.StatusOK, gin.H{"status": "order history cleared"})
}

func (s *Server) clearSession(c *gin.Context) {
	sess := currentSession(c)
	sess.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "session data cleared"})
}
