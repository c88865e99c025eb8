package cart

import (
	"fmt"
	"time"

	"github.com/sciencekitconnect/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// AddItem carries everything a new line needs. Price, Name and ImageURL become
// snapshots on the item; the cart never re-fetches the product.
type AddItem struct {
	ProductID string
	Quantity  int
	Price     string
	Name      string
	ImageURL  string
}

// Add merges into an existing line for the same product, increasing its
// quantity, or appends a new line with a fresh identifier.
func Add(state models.Cart, item AddItem) models.Cart {
	for i, existing := range state.Items {
		if existing.ProductID == item.ProductID {
			items := cloneItems(state.Items)
			items[i].Quantity += item.Quantity
			return recompute(items)
		}
	}

	items := append(cloneItems(state.Items), models.CartItem{
		ID:        newItemID(item.ProductID),
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Name:      item.Name,
		ImageURL:  item.ImageURL,
	})
	return recompute(items)
}

// Remove deletes every line matching productID; there is at most one.
func Remove(state models.Cart, productID string) models.Cart {
	items := []models.CartItem{}
	for _, item := range state.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	return recompute(items)
}

// SetQuantity overwrites the matching line's quantity. Zero or below delegates
// to Remove.
func SetQuantity(state models.Cart, productID string, quantity int) models.Cart {
	if quantity <= 0 {
		return Remove(state, productID)
	}
	items := cloneItems(state.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}
	return recompute(items)
}

// Clear resets to the empty cart regardless of prior state.
func Clear() models.Cart {
	return models.EmptyCart()
}

// Reload replaces the state with an externally supplied snapshot verbatim.
// The snapshot is trusted as-is; nothing is recomputed.
func Reload(snapshot models.Cart) models.Cart {
	return snapshot
}

// recompute derives total and item count from the line items. Transitions must
// never set those fields any other way.
func recompute(items []models.CartItem) models.Cart {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			// an unparsable snapshot price contributes nothing to the total
			price = decimal.Zero
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	return models.Cart{
		Items:     items,
		Total:     total.StringFixed(2),
		ItemCount: count,
	}
}

// newItemID derives a cart-unique identifier from the product id and the
// creation timestamp, like the original client did.
func newItemID(productID string) string {
	return fmt.Sprintf("%s_%d", productID, time.Now().UnixMilli())
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
