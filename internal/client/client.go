package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sciencekitconnect/storefront/internal/models"
)

// ErrNotFound is returned when the server answers 404.
var ErrNotFound = errors.New("not found")

// Client is the presentation layer's read path: a thin typed wrapper over the
// REST API. Requests are fire-and-forget; there is no retry or timeout policy
// beyond whatever the injected http.Client carries.
type Client struct {
	baseURL string
	client  *http.Client
}

// SearchParams mirrors the search endpoint's query string. Zero values are
// omitted. Prices are decimal strings, as everywhere else.
type SearchParams struct {
	Q          string
	Categories []string
	MinPrice   string
	MaxPrice   string
	AgeGroups  []string
}

// New builds a client for the given base URL, e.g. "http://localhost:8080".
// A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

// Products fetches the full product list.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	return out, c.get(ctx, "/api/products", nil, &out)
}

// FeaturedProducts fetches the featured subset.
func (c *Client) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	return out, c.get(ctx, "/api/products/featured", nil, &out)
}

// Search fetches the filtered product list.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]models.Product, error) {
	values := url.Values{}
	if params.Q != "" {
		values.Set("q", params.Q)
	}
	for _, cat := range params.Categories {
		values.Add("category", cat)
	}
	if params.MinPrice != "" {
		values.Set("minPrice", params.MinPrice)
	}
	if params.MaxPrice != "" {
		values.Set("maxPrice", params.MaxPrice)
	}
	for _, age := range params.AgeGroups {
		values.Add("ageGroup", age)
	}

	var out []models.Product
	return out, c.get(ctx, "/api/products/search", values, &out)
}

// Product fetches a single product. A missing id yields ErrNotFound.
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	var out models.Product
	return out, c.get(ctx, "/api/products/"+url.PathEscape(id), nil, &out)
}

// Categories fetches the category list.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	return out, c.get(ctx, "/api/categories", nil, &out)
}

// CategoryProducts fetches the products in one category.
func (c *Client) CategoryProducts(ctx context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	return out, c.get(ctx, "/api/categories/"+url.PathEscape(category)+"/products", nil, &out)
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	u := c.baseURL + path
	if len(values) > 0 {
		u += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
