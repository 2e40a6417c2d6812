package model

import "time"

// Money represents a monetary amount in a supported currency.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// DefaultCurrency is used when neither a card override nor the global
// price provides a currency.
const DefaultCurrency = "USD"

// SupportedCurrencies is the fixed set of currencies the service accepts.
var SupportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"CAD": true,
	"AUD": true,
	"JPY": true,
}

// GlobalPrice is the single default price applied to any card without
// its own override. It is absent until an admin sets it.
type GlobalPrice struct {
	Price     Money     `json:"price"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GlobalPriceResponse is the wire form of the global price. When no
// global price has been set, Amount and UpdatedAt are null and the
// currency falls back to USD.
type GlobalPriceResponse struct {
	Amount    *float64   `json:"amount"`
	Currency  string     `json:"currency"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// NewGlobalPriceResponse builds the wire form for an optional global price.
func NewGlobalPriceResponse(gp *GlobalPrice) GlobalPriceResponse {
	if gp == nil {
		return GlobalPriceResponse{Currency: DefaultCurrency}
	}
	amount := gp.Price.Amount
	updatedAt := gp.UpdatedAt
	return GlobalPriceResponse{
		Amount:    &amount,
		Currency:  gp.Price.Currency,
		UpdatedAt: &updatedAt,
	}
}
