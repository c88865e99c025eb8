package catalog

import (
	"sort"
	"strings"

	"github.com/sciencekitconnect/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Sort orders a fetched product list for display. These run after the filter
// pipeline, never inside it.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceAsc  Sort = "price-low-high"
	SortPriceDesc Sort = "price-high-low"
	SortName      Sort = "name"
)

// Apply sorts a copy of the list and returns it; the input is left alone.
// Unknown sort values fall back to featured ordering, like the catalog page's
// default.
func (s Sort) Apply(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch s {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOf(out[i]).LessThan(priceOf(out[j]))
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOf(out[i]).GreaterThan(priceOf(out[j]))
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	default:
		// featured first, otherwise keep fetch order
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	}
	return out
}

func priceOf(p models.Product) decimal.Decimal {
	d, err := decimal.NewFromString(p.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}
