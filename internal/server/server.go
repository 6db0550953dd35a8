package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qoozee/qoozee/internal/advisor"
	"github.com/qoozee/qoozee/internal/catalog"
	"github.com/qoozee/qoozee/internal/session"
)

type Server struct {
	router   *gin.Engine
	catalog  *catalog.Store
	advisor  advisor.Advisor
	sessions session.Store
}

// NewServer creates a new server instance
func NewServer(store *catalog.Store, adv advisor.Advisor, sessions session.Store) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		catalog:  store,
		advisor:  adv,
		sessions: sessions,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.healthCheck)

	shop := api.Group("")
	shop.Use(s.withSession())
	{
		shop.GET("/catalog", s.browseCatalog)
		shop.GET("/catalog/categories", s.listCategories)

		shop.GET("/cart", s.showCart)
		shop.POST("/cart/items", s.addToCart)
		shop.DELETE("/cart/items/:id", s.removeFromCart)

		shop.POST("/compare", s.compareProducts)
		shop.POST("/compare/query", s.compareQuery)

		shop.POST("/recommend", s.recommend)
		shop.POST("/recommend/cart", s.recommendFromCart)
		shop.POST("/ask", s.ask)

		shop.POST("/checkout", s.placeOrder)
		shop.POST("/checkout/continue", s.continueShopping)
		shop.GET("/orders", s.listOrders)
		shop.GET("/orders/latest", s.latestOrder)

		debug := shop.Group("/debug")
		debug.GET("/behavior", s.behaviorLog)
		debug.POST("/clear-orders", s.clearOrders)
		debug.POST("/clear-session", s.clearSession)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "qoozee",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
