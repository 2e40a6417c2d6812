package repository

import (
	"context"
	"sync"
	"time"

	"gift-kiosk/internal/model"

	"github.com/rs/zerolog"
)

// memoryGlobalPriceRepository implements GlobalPriceRepository with a
// single mutex-guarded value.
type memoryGlobalPriceRepository struct {
	mu     sync.RWMutex
	price  *model.GlobalPrice
	logger zerolog.Logger
}

// NewGlobalPriceRepository creates a new in-memory global price repository.
func NewGlobalPriceRepository(logger zerolog.Logger) GlobalPriceRepository {
	return &memoryGlobalPriceRepository{
		logger: logger.With().Str("repository", "global_price").Logger(),
	}
}

// Get returns the current global price, or nil if none has been set.
func (r *memoryGlobalPriceRepository) Get(ctx context.Context) (*model.GlobalPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.price == nil {
		return nil, nil
	}

	out := *r.price
	return &out, nil
}

// Set replaces the global price wholly, discarding the prior value.
func (r *memoryGlobalPriceRepository) Set(ctx context.Context, price model.Money) (*model.GlobalPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.price = &model.GlobalPrice{
		Price:     price,
		UpdatedAt: time.Now(),
	}

	r.logger.Debug().
		Float64("amount", price.Amount).
		Str("currency", price.Currency).
		Msg("global price replaced")

	out := *r.price
	return &out, nil
}
