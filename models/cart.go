package models

// CartItem is a cart line as the storefront submits it at checkout. The cart
// itself lives in the browser; only these lines reach the server. Price is
// accepted for compatibility but never trusted.
type CartItem struct {
	ID           FlexID  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize"`
}
