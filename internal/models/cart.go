package models

// CartItem is one line of a cart. Price, Name and ImageURL are snapshots taken
// when the item was added; they do not track later product changes.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
}

// Cart holds the items a session has selected. Total and ItemCount are derived
// from Items on every transition and are never set independently.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     string     `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// EmptyCart is the state a fresh session starts from and the state Clear
// returns to.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}, Total: "0.00", ItemCount: 0}
}

// StorageKey is the fixed application key the serialized cart is persisted
// under in device storage.
const StorageKey = "sciencekit-cart"
