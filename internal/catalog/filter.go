package catalog

import (
	"fmt"
	"strings"

	"github.com/sciencekitconnect/storefront/internal/models"
	"github.com/sciencekitconnect/storefront/internal/store"
	"github.com/shopspring/decimal"
)

// Query narrows the product list. Every field is optional; absent fields are
// no-ops. The predicates are independent AND-combined filters, so the order
// they run in never changes the result set.
type Query struct {
	Term       string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	AgeGroups  []string
}

// ParsePrice converts a price query parameter into a decimal. An empty string
// means the filter is absent and returns nil without error.
func ParsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", raw, err)
	}
	return &d, nil
}

// Apply runs the pipeline against the store: free-text search first (or the
// full list when no term is given), then each predicate. The result keeps the
// store's native order; sorting is a presentation concern.
func (q Query) Apply(s *store.Store) []models.Product {
	var products []models.Product
	if q.Term != "" {
		products = s.SearchProducts(q.Term)
	} else {
		products = s.Products()
	}

	products = filter(products, q.categoryMatch)
	products = filter(products, q.minPriceMatch)
	products = filter(products, q.maxPriceMatch)
	products = filter(products, q.ageGroupMatch)
	return products
}

func filter(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := products[:0:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	if out == nil {
		return []models.Product{}
	}
	return out
}

func (q Query) categoryMatch(p models.Product) bool {
	if len(q.Categories) == 0 {
		return true
	}
	return containsFold(q.Categories, p.Category)
}

func (q Query) ageGroupMatch(p models.Product) bool {
	if len(q.AgeGroups) == 0 {
		return true
	}
	return containsFold(q.AgeGroups, p.AgeGroup)
}

func (q Query) minPriceMatch(p models.Product) bool {
	if q.MinPrice == nil {
		return true
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return false
	}
	return price.GreaterThanOrEqual(*q.MinPrice)
}

func (q Query) maxPriceMatch(p models.Product) bool {
	if q.MaxPrice == nil {
		return true
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return false
	}
	return price.LessThanOrEqual(*q.MaxPrice)
}

func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}
