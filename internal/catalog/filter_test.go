package catalog

import (
	"testing"

	"github.com/sciencekitconnect/storefront/internal/models"
	"github.com/sciencekitconnect/storefront/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, raw string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	return &d
}

// twoKitStore seeds product A (100.00, Chemistry Sets, in stock) and product B
// (200.00, Robotics Kits, out of stock).
func twoKitStore() *store.Store {
	return store.NewWithData(nil, []models.Product{
		{
			Name:        "Beaker Basics",
			Description: "Starter glassware for first experiments",
			Price:       "100.00",
			Category:    "Chemistry Sets",
			AgeGroup:    "Elementary (8-11)",
			InStock:     5,
		},
		{
			Name:        "Rover Builder",
			Description: "A programmable wheeled robot",
			Price:       "200.00",
			Category:    "Robotics Kits",
			AgeGroup:    "Middle School (12-14)",
			InStock:     0,
		},
	})
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestEmptyQueryReturnsEverything(t *testing.T) {
	s := store.New()
	got := Query{}.Apply(s)
	assert.Equal(t, s.Products(), got)
}

func TestMinPriceFilter(t *testing.T) {
	s := twoKitStore()

	got := Query{MinPrice: price(t, "150")}.Apply(s)
	assert.Equal(t, []string{"Rover Builder"}, names(got))

	// the out-of-stock product is still returned; stock gates add-to-cart,
	// not visibility
	assert.False(t, got[0].InStockNow())
}

func TestMaxPriceFilter(t *testing.T) {
	s := twoKitStore()

	got := Query{MaxPrice: price(t, "150")}.Apply(s)
	assert.Equal(t, []string{"Beaker Basics"}, names(got))
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	s := twoKitStore()

	got := Query{MinPrice: price(t, "100.00"), MaxPrice: price(t, "200.00")}.Apply(s)
	assert.Equal(t, []string{"Beaker Basics", "Rover Builder"}, names(got))
}

func TestCategoryFilterIsCaseInsensitive(t *testing.T) {
	s := twoKitStore()

	got := Query{Categories: []string{"chemistry sets"}}.Apply(s)
	assert.Equal(t, []string{"Beaker Basics"}, names(got))
}

func TestCategoryFilterAcceptsMultipleValues(t *testing.T) {
	s := twoKitStore()

	got := Query{Categories: []string{"chemistry sets", "ROBOTICS KITS"}}.Apply(s)
	assert.Len(t, got, 2)
}

func TestAgeGroupFilter(t *testing.T) {
	s := twoKitStore()

	got := Query{AgeGroups: []string{"middle school (12-14)"}}.Apply(s)
	assert.Equal(t, []string{"Rover Builder"}, names(got))
}

func TestTermStartsFromSearch(t *testing.T) {
	s := twoKitStore()

	got := Query{Term: "robot"}.Apply(s)
	assert.Equal(t, []string{"Rover Builder"}, names(got))

	// term and predicate combine with AND
	got = Query{Term: "robot", MaxPrice: price(t, "150")}.Apply(s)
	assert.Empty(t, got)
}

func TestFiltersCombine(t *testing.T) {
	s := store.New()

	got := Query{
		Categories: []string{"Arduino Projects"},
		MinPrice:   price(t, "5000"),
		MaxPrice:   price(t, "12000"),
		AgeGroups:  []string{"High School (15-18)"},
	}.Apply(s)

	require.NotEmpty(t, got)
	for _, p := range got {
		d, err := decimal.NewFromString(p.Price)
		require.NoError(t, err)
		assert.Equal(t, "Arduino Projects", p.Category)
		assert.Equal(t, "High School (15-18)", p.AgeGroup)
		assert.True(t, d.GreaterThanOrEqual(decimal.NewFromInt(5000)))
		assert.True(t, d.LessThanOrEqual(decimal.NewFromInt(12000)))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	s := store.New()
	q := Query{
		Term:      "kit",
		MinPrice:  price(t, "4000"),
		AgeGroups: []string{"High School (15-18)", "College (18+)"},
	}

	once := q.Apply(s)
	twice := q.Apply(s)
	assert.Equal(t, once, twice)
}

func TestResultKeepsStoreOrder(t *testing.T) {
	s := store.New()

	got := Query{MinPrice: price(t, "1")}.Apply(s)
	assert.Equal(t, names(s.Products()), names(got))
}

func TestParsePrice(t *testing.T) {
	d, err := ParsePrice("129.99")
	require.NoError(t, err)
	assert.Equal(t, "129.99", d.StringFixed(2))

	d, err = ParsePrice("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParsePrice("not-a-number")
	assert.Error(t, err)
}
