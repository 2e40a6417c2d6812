package repository

import (
	"context"

	"gift-kiosk/internal/model"
)

// CardRepository defines the interface for gift-card data access. It is
// the sole owner of the code-to-card mapping; all methods take canonical
// codes and return defensive copies so callers never observe a record
// mid-mutation.
type CardRepository interface {
	// LookupOrCreate returns the existing card for code, or creates a
	// fresh pending card with no price override and returns it.
	LookupOrCreate(ctx context.Context, code string) (*model.GiftCard, error)

	// SetStatus updates a card's status and updatedAt. Fails with
	// model.ErrCardNotFound for unknown codes, then model.ErrInvalidStatus
	// for unrecognised status values, leaving the record unchanged.
	SetStatus(ctx context.Context, code string, status model.Status) (*model.GiftCard, error)

	// SetPrice sets or, when price is nil, clears a card's price
	// override. Always bumps updatedAt. Fails with model.ErrCardNotFound.
	SetPrice(ctx context.Context, code string, price *model.Money) (*model.GiftCard, error)

	// Delete removes a card irrevocably. Fails with model.ErrCardNotFound.
	Delete(ctx context.Context, code string) error

	// ListAll returns every card ordered by createdAt descending along
	// with per-status counts.
	ListAll(ctx context.Context) ([]model.GiftCard, model.CardStats, error)
}

// GlobalPriceRepository owns the single global default price.
type GlobalPriceRepository interface {
	// Get returns the current global price, or nil if none has been set.
	Get(ctx context.Context) (*model.GlobalPrice, error)

	// Set replaces the global price wholly and stamps a fresh updatedAt.
	Set(ctx context.Context, price model.Money) (*model.GlobalPrice, error)
}
