package models

// CartLine is one distinct service in the cart.
type CartLine struct {
	Service  Service `json:"service"`
	Quantity int     `json:"quantity"`
}

// CartLineView is a CartLine rendered in one locale.
type CartLineView struct {
	ServiceID  string  `json:"serviceId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	PriceLabel string  `json:"priceLabel"`
	Subtotal   float64 `json:"subtotal"`
}

// CartView is the cart as returned to the client.
type CartView struct {
	Lines     []CartLineView `json:"lines"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"itemCount"`
	Empty     bool           `json:"empty"`
}

// AddToCartRequest is the body of POST /api/cart/items.
type AddToCartRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}
