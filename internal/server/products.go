package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sciencekitconnect/storefront/internal/catalog"
	"github.com/sciencekitconnect/storefront/internal/store"
)

// searchParams mirrors the search endpoint's query string. category and
// ageGroup are repeatable; prices must parse as numbers or binding rejects the
// request.
type searchParams struct {
	Q        string   `form:"q"`
	Category []string `form:"category"`
	MinPrice string   `form:"minPrice" binding:"omitempty,numeric"`
	MaxPrice string   `form:"maxPrice" binding:"omitempty,numeric"`
	AgeGroup []string `form:"ageGroup"`
}

func (s *Server) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Products())
}

func (s *Server) featuredProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.FeaturedProducts())
}

func (s *Server) searchProducts(c *gin.Context) {
	var params searchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		s.logger.Warn("rejected search request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters"})
		return
	}

	minPrice, err := catalog.ParsePrice(params.MinPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters"})
		return
	}
	maxPrice, err := catalog.ParsePrice(params.MaxPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters"})
		return
	}

	query := catalog.Query{
		Term:       params.Q,
		Categories: params.Category,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		AgeGroups:  params.AgeGroup,
	}
	c.JSON(http.StatusOK, query.Apply(s.store))
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.store.Product(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		s.logger.Error("failed to fetch product", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Categories())
}

func (s *Server) productsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ProductsByCategory(c.Param("category")))
}
