package entity

// CartItem records the price at the moment of adding; later product edits do
// not reprice items already in a cart.
type CartItem struct {
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	PriceAtAdd  float64 `json:"price_at_add"`
	SellerEmail string  `json:"seller_email"`
}
