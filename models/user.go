package models

// LineItem is one cart entry. The storefront sends arbitrary fields
// (quantity, price, image url); only the name is interpreted here, as
// the dedup key within a cart.
type LineItem map[string]interface{}

// Name returns the item's dedup key, or "" when absent.
func (li LineItem) Name() string {
	if v, ok := li["name"].(string); ok {
		return v
	}
	return ""
}

// Order is an immutable snapshot of the cart at placement time.
// Orders are append-only; they are never mutated or removed.
type Order struct {
	Items []LineItem `json:"items" firestore:"items"`
}

// User is keyed by phone in the users collection. Phone never changes
// once the document is created.
type User struct {
	Name    string     `json:"name" firestore:"name"`
	Phone   string     `json:"phone" firestore:"phone"`
	Address string     `json:"address" firestore:"address"`
	Cart    []LineItem `json:"cart" firestore:"cart"`
	Orders  []Order    `json:"orders" firestore:"orders"`
}
