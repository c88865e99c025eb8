package client

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sciencekitconnect/storefront/internal/server"
	"github.com/sciencekitconnect/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestClient(t *testing.T) (*Client, *store.Store) {
	t.Helper()
	st := store.New()
	srv := server.NewServer(st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL, ts.Client()), st
}

func TestProducts(t *testing.T) {
	c, st := newTestClient(t)

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, len(st.Products()))
}

func TestFeaturedProducts(t *testing.T) {
	c, _ := newTestClient(t)

	products, err := c.FeaturedProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestProduct(t *testing.T) {
	c, st := newTestClient(t)
	want := st.Products()[0]

	got, err := c.Product(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Price, got.Price)
}

func TestProductNotFound(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Product(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	c, _ := newTestClient(t)

	products, err := c.Search(context.Background(), SearchParams{
		Categories: []string{"chemistry sets"},
		MaxPrice:   "10000",
	})
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Chemistry Sets", p.Category)
	}
}

func TestSearchRejectedParamsSurfaceAsError(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Search(context.Background(), SearchParams{MinPrice: "not-a-price"})
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	c, st := newTestClient(t)

	categories, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, len(st.Categories()))
}

func TestCategoryProducts(t *testing.T) {
	c, _ := newTestClient(t)

	products, err := c.CategoryProducts(context.Background(), "robotics kits")
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Robotics Kits", p.Category)
	}
}
