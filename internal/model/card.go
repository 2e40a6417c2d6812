package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the review state of a gift card.
type Status string

// Gift card statuses. Every card starts out pending until an admin
// accepts or declines it.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Valid reports whether s is a recognised status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// GiftCard represents a submitted gift card keyed by its canonical code.
type GiftCard struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Status    Status     `json:"status"`
	Price     *Money     `json:"price"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// CardStats holds per-status counts for admin reporting.
type CardStats struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
	Pending  int `json:"pending"`
}

// ValidateCardRequest is the customer-facing submission payload.
type ValidateCardRequest struct {
	Code string `json:"code"`
}

// ValidateCardResponse is what a customer sees after submitting a code.
// Price is the resolved effective price, not the raw override.
type ValidateCardResponse struct {
	Code      string     `json:"code"`
	Status    Status     `json:"status"`
	Price     *Money     `json:"price"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// SetStatusRequest is the admin payload for updating a card's status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// SetPriceRequest is the admin payload for setting or clearing a card's
// price override. A null amount clears the override; a missing currency
// defaults to the global price's currency, else USD.
type SetPriceRequest struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
}

// SetGlobalPriceRequest is the admin payload for replacing the global
// price. Both fields are required.
type SetGlobalPriceRequest struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
}

// ListCardsResponse is the admin overview of all submitted cards.
type ListCardsResponse struct {
	Cards       []GiftCard          `json:"cards"`
	Stats       CardStats           `json:"stats"`
	GlobalPrice GlobalPriceResponse `json:"globalPrice"`
}

// DeleteCardResponse confirms removal of a card.
type DeleteCardResponse struct {
	Deleted bool   `json:"deleted"`
	Code    string `json:"code"`
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse reports whether the caller holds an authenticated
// admin session.
type SessionResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}
