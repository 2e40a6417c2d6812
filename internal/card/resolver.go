package card

import (
	"gift-kiosk/internal/model"
)

// ResolvePrice determines the effective price for a card: a per-card
// override takes precedence, otherwise the global price applies, and if
// neither exists the result is nil ("no price set yet"). Pure function,
// shared by the customer-facing status check and admin reporting.
func ResolvePrice(c *model.GiftCard, global *model.GlobalPrice) *model.Money {
	if c != nil && c.Price != nil {
		price := *c.Price
		return &price
	}

	if global != nil {
		price := global.Price
		return &price
	}

	return nil
}
