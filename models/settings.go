package models

// Settings is the store branding block shown on the till and on receipts.
type Settings struct {
	StoreName     string `json:"store_name"`
	CurrencyCode  string `json:"currency_code"`
	ReceiptFooter string `json:"receipt_footer"`
}

func DefaultSettings() Settings {
	return Settings{
		StoreName:    "FSSPOS",
		CurrencyCode: "USD",
	}
}
