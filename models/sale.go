package models

import "time"

// Sale is a completed checkout, recorded for reporting.
type Sale struct {
	ID          int64      `json:"id"`
	CashierID   int64      `json:"cashier_id"`
	CashierName string     `json:"cashier_name"`
	Lines       []CartLine `json:"lines"`
	Total       float64    `json:"total"`
	CreatedAt   time.Time  `json:"created_at"`
}
