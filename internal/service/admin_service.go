package service

import (
	"context"
	"fmt"

	"gift-kiosk/internal/card"
	"gift-kiosk/internal/model"
	"gift-kiosk/internal/repository"

	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	cards  repository.CardRepository
	prices repository.GlobalPriceRepository
	logger zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	cards repository.CardRepository,
	prices repository.GlobalPriceRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		cards:  cards,
		prices: prices,
		logger: logger.With().Str("service", "admin").Logger(),
	}
}

// ListCards returns every card newest-first with per-status counts and
// the current global price.
func (s *adminService) ListCards(ctx context.Context) (*model.ListCardsResponse, error) {
	cards, stats, err := s.cards.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	global, err := s.prices.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load global price: %w", err)
	}

	return &model.ListCardsResponse{
		Cards:       cards,
		Stats:       stats,
		GlobalPrice: model.NewGlobalPriceResponse(global),
	}, nil
}

// SetCardStatus updates a card's review status. The code goes through
// the same normalizer as customer submissions so every path keys on the
// canonical form.
func (s *adminService) SetCardStatus(ctx context.Context, rawCode, status string) (*model.GiftCard, error) {
	code, err := card.NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	updated, err := s.cards.SetStatus(ctx, code, model.Status(status))
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("code", code).
		Str("status", status).
		Msg("card status set by admin")

	return updated, nil
}

// SetCardPrice sets or clears a card's price override. A nil amount
// clears the override. When an amount is given without a currency, the
// global price's currency applies, else USD.
func (s *adminService) SetCardPrice(ctx context.Context, rawCode string, req *model.SetPriceRequest) (*model.GiftCard, error) {
	code, err := card.NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	if req.Amount == nil {
		updated, err := s.cards.SetPrice(ctx, code, nil)
		if err != nil {
			return nil, err
		}

		s.logger.Info().Str("code", code).Msg("card price override cleared by admin")
		return updated, nil
	}

	currency := model.DefaultCurrency
	if req.Currency != nil && *req.Currency != "" {
		currency = *req.Currency
	} else {
		global, err := s.prices.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load global price: %w", err)
		}
		if global != nil {
			currency = global.Price.Currency
		}
	}

	if err := card.ValidatePrice(*req.Amount, currency); err != nil {
		return nil, err
	}

	price := model.Money{Amount: *req.Amount, Currency: currency}
	updated, err := s.cards.SetPrice(ctx, code, &price)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("code", code).
		Float64("amount", price.Amount).
		Str("currency", price.Currency).
		Msg("card price override set by admin")

	return updated, nil
}

// DeleteCard removes a card irrevocably.
func (s *adminService) DeleteCard(ctx context.Context, rawCode string) error {
	code, err := card.NormalizeCode(rawCode)
	if err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, code); err != nil {
		return err
	}

	s.logger.Info().Str("code", code).Msg("card deleted by admin")

	return nil
}

// SetGlobalPrice replaces the global default price. Both amount and
// currency are mandatory here, unlike per-card overrides.
func (s *adminService) SetGlobalPrice(ctx context.Context, req *model.SetGlobalPriceRequest) (model.GlobalPriceResponse, error) {
	if req.Amount == nil || req.Currency == nil {
		return model.GlobalPriceResponse{}, model.ErrInvalidPrice
	}

	if err := card.ValidatePrice(*req.Amount, *req.Currency); err != nil {
		return model.GlobalPriceResponse{}, err
	}

	updated, err := s.prices.Set(ctx, model.Money{Amount: *req.Amount, Currency: *req.Currency})
	if err != nil {
		return model.GlobalPriceResponse{}, fmt.Errorf("failed to set global price: %w", err)
	}

	s.logger.Info().
		Float64("amount", updated.Price.Amount).
		Str("currency", updated.Price.Currency).
		Msg("global price set by admin")

	return model.NewGlobalPriceResponse(updated), nil
}
