package service

import (
	"context"

	"gift-kiosk/internal/model"
)

// CardService defines the customer-facing operations.
type CardService interface {
	// SubmitCode validates a raw gift-card code, registers it on first
	// sight and returns its status plus the resolved effective price.
	SubmitCode(ctx context.Context, rawCode string) (*model.ValidateCardResponse, error)

	// GlobalPrice returns the current global price in wire form.
	GlobalPrice(ctx context.Context) (model.GlobalPriceResponse, error)
}

// AdminService defines the admin review and pricing operations. Callers
// must have passed the admin gate before invoking any of these.
type AdminService interface {
	// ListCards returns every card newest-first with per-status counts
	// and the current global price.
	ListCards(ctx context.Context) (*model.ListCardsResponse, error)

	// SetCardStatus updates a card's review status.
	SetCardStatus(ctx context.Context, rawCode, status string) (*model.GiftCard, error)

	// SetCardPrice sets or clears a card's price override. A nil amount
	// clears; a missing currency defaults to the global price's
	// currency, else USD.
	SetCardPrice(ctx context.Context, rawCode string, req *model.SetPriceRequest) (*model.GiftCard, error)

	// DeleteCard removes a card irrevocably.
	DeleteCard(ctx context.Context, rawCode string) error

	// SetGlobalPrice replaces the global default price.
	SetGlobalPrice(ctx context.Context, req *model.SetGlobalPriceRequest) (model.GlobalPriceResponse, error)
}
