package card

import (
	"math"

	"gift-kiosk/internal/model"
)

// ValidatePrice checks that amount is a finite, non-negative number and
// that currency belongs to the supported set. Currency defaulting for
// per-card overrides is the caller's responsibility; by the time a price
// reaches this function both fields must be concrete.
func ValidatePrice(amount float64, currency string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return model.ErrInvalidPrice
	}

	if !model.SupportedCurrencies[currency] {
		return model.ErrInvalidPrice
	}

	return nil
}
