package models

// CartLine is one row in a terminal's cart. Quantity is always >= 1;
// a line that would drop to 0 is removed instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartView is the snapshot handed to the UI and to checkout.
type CartView struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}
