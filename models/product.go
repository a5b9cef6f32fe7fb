package models

type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"` // free-text label, e.g. "drinks"
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Barcode  string  `json:"barcode,omitempty"` // empty means no barcode assigned
	ImageURL string  `json:"image_url,omitempty"`
}
