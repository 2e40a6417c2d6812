package service

import (
	"context"
	"fmt"

	"gift-kiosk/internal/card"
	"gift-kiosk/internal/metrics"
	"gift-kiosk/internal/model"
	"gift-kiosk/internal/repository"

	"github.com/rs/zerolog"
)

// cardService implements CardService.
type cardService struct {
	cards  repository.CardRepository
	prices repository.GlobalPriceRepository
	logger zerolog.Logger
}

// NewCardService creates a new customer-facing card service.
func NewCardService(
	cards repository.CardRepository,
	prices repository.GlobalPriceRepository,
	logger zerolog.Logger,
) CardService {
	return &cardService{
		cards:  cards,
		prices: prices,
		logger: logger.With().Str("service", "card").Logger(),
	}
}

// SubmitCode validates a raw code, registers it on first sight and
// returns its status with the resolved effective price.
func (s *cardService) SubmitCode(ctx context.Context, rawCode string) (*model.ValidateCardResponse, error) {
	code, err := card.NormalizeCode(rawCode)
	if err != nil {
		s.logger.Debug().Str("raw_code", rawCode).Msg("rejected malformed code")
		metrics.CardSubmissions.WithLabelValues("invalid_format").Inc()
		return nil, err
	}

	c, err := s.cards.LookupOrCreate(ctx, code)
	if err != nil {
		metrics.CardSubmissions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to look up card: %w", err)
	}

	global, err := s.prices.Get(ctx)
	if err != nil {
		metrics.CardSubmissions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load global price: %w", err)
	}

	metrics.CardSubmissions.WithLabelValues(string(c.Status)).Inc()

	return &model.ValidateCardResponse{
		Code:      c.Code,
		Status:    c.Status,
		Price:     card.ResolvePrice(c, global),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

// GlobalPrice returns the current global price in wire form.
func (s *cardService) GlobalPrice(ctx context.Context) (model.GlobalPriceResponse, error) {
	global, err := s.prices.Get(ctx)
	if err != nil {
		return model.GlobalPriceResponse{}, fmt.Errorf("failed to load global price: %w", err)
	}

	return model.NewGlobalPriceResponse(global), nil
}
