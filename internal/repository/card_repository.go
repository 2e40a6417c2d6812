package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gift-kiosk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryCardRepository implements CardRepository with an in-memory map.
// A single RWMutex serialises mutations so racing updates to the same
// code cannot interleave, while reads share the lock.
type memoryCardRepository struct {
	mu     sync.RWMutex
	cards  map[string]*model.GiftCard
	logger zerolog.Logger
}

// NewCardRepository creates a new in-memory card repository.
func NewCardRepository(logger zerolog.Logger) CardRepository {
	return &memoryCardRepository{
		cards:  make(map[string]*model.GiftCard),
		logger: logger.With().Str("repository", "card").Logger(),
	}
}

// LookupOrCreate returns the existing card for code, creating a fresh
// pending one on first sight.
func (r *memoryCardRepository) LookupOrCreate(ctx context.Context, code string) (*model.GiftCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.cards[code]; ok {
		return copyCard(existing), nil
	}

	created := &model.GiftCard{
		ID:        uuid.New(),
		Code:      code,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	}
	r.cards[code] = created

	r.logger.Debug().
		Str("code", code).
		Str("card_id", created.ID.String()).
		Msg("card created")

	return copyCard(created), nil
}

// SetStatus updates a card's status and updatedAt.
func (r *memoryCardRepository) SetStatus(ctx context.Context, code string, status model.Status) (*model.GiftCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.cards[code]
	if !ok {
		return nil, model.ErrCardNotFound
	}

	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	now := time.Now()
	existing.Status = status
	existing.UpdatedAt = &now

	r.logger.Debug().
		Str("code", code).
		Str("status", string(status)).
		Msg("card status updated")

	return copyCard(existing), nil
}

// SetPrice sets or clears a card's price override.
func (r *memoryCardRepository) SetPrice(ctx context.Context, code string, price *model.Money) (*model.GiftCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.cards[code]
	if !ok {
		return nil, model.ErrCardNotFound
	}

	now := time.Now()
	if price == nil {
		existing.Price = nil
	} else {
		p := *price
		existing.Price = &p
	}
	existing.UpdatedAt = &now

	r.logger.Debug().
		Str("code", code).
		Bool("cleared", price == nil).
		Msg("card price updated")

	return copyCard(existing), nil
}

// Delete removes a card irrevocably.
func (r *memoryCardRepository) Delete(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[code]; !ok {
		return model.ErrCardNotFound
	}

	delete(r.cards, code)

	r.logger.Debug().Str("code", code).Msg("card deleted")

	return nil
}

// ListAll returns every card newest-first along with per-status counts.
// Ordering is based on creation time (code breaks ties) rather than map
// insertion order, so a future persistent backend behaves identically.
func (r *memoryCardRepository) ListAll(ctx context.Context) ([]model.GiftCard, model.CardStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]model.GiftCard, 0, len(r.cards))
	var stats model.CardStats

	for _, c := range r.cards {
		cards = append(cards, *copyCard(c))

		stats.Total++
		switch c.Status {
		case model.StatusAccepted:
			stats.Accepted++
		case model.StatusDeclined:
			stats.Declined++
		case model.StatusPending:
			stats.Pending++
		}
	}

	sort.Slice(cards, func(i, j int) bool {
		if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		}
		return cards[i].Code < cards[j].Code
	})

	return cards, stats, nil
}

// copyCard returns a deep copy so callers never share pointers with the
// store's own record.
func copyCard(c *model.GiftCard) *model.GiftCard {
	out := *c
	if c.Price != nil {
		price := *c.Price
		out.Price = &price
	}
	if c.UpdatedAt != nil {
		updatedAt := *c.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return &out
}
