package models

// Product is a catalog record. Price is kept as a decimal string with two
// fraction digits so currency math never touches binary floats.
type Product struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          string         `json:"price"`
	Category       string         `json:"category"`
	Subcategory    string         `json:"subcategory,omitempty"`
	AgeGroup       string         `json:"ageGroup"`
	ImageURL       string         `json:"imageUrl"`
	Specifications map[string]any `json:"specifications,omitempty"`
	SafetyInfo     string         `json:"safetyInfo,omitempty"`
	InStock        int            `json:"inStock"`
	Featured       bool           `json:"featured"`
}

// InStockNow reports whether add-to-cart should be enabled for this product.
// Out of stock is a display state, not an error.
func (p Product) InStockNow() bool {
	return p.InStock > 0
}

// Category groups products for browsing. ProductCount is a display hint set at
// seed time; it is not recomputed from live product data and may drift.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	ProductCount int    `json:"productCount"`
}
