package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sciencekitconnect/storefront/internal/store"
)

type Server struct {
	router *gin.Engine
	store  *store.Store
	logger *slog.Logger
}

// NewServer creates a new server instance around an already seeded store.
func NewServer(st *store.Store, logger *slog.Logger) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		store:  st,
		logger: logger,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.GET("/products", s.listProducts)
		api.GET("/products/featured", s.featuredProducts)
		api.GET("/products/search", s.searchProducts)
		api.GET("/products/:id", s.getProduct)

		api.GET("/categories", s.listCategories)
		api.GET("/categories/:category/products", s.productsByCategory)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "storefront",
		"version": "0.1.0",
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
