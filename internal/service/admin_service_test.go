package service

import (
	"context"
	"testing"
	"time"

	"gift-kiosk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func stringPtr(s string) *string  { return &s }

func TestAdminService_ListCards(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	listed := []model.GiftCard{
		{ID: uuid.New(), Code: "NEWER1", Status: model.StatusPending, CreatedAt: time.Now()},
		{ID: uuid.New(), Code: "OLDER1", Status: model.StatusAccepted, CreatedAt: time.Now().Add(-time.Hour)},
	}
	stats := model.CardStats{Total: 2, Accepted: 1, Pending: 1}
	global := &model.GlobalPrice{
		Price:     model.Money{Amount: 9.99, Currency: "USD"},
		UpdatedAt: time.Now(),
	}

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	cards.On("ListAll", ctx).Return(listed, stats, nil)
	prices.On("Get", ctx).Return(global, nil)

	svc := NewAdminService(cards, prices, logger)

	resp, err := svc.ListCards(ctx)
	require.NoError(t, err)

	assert.Equal(t, listed, resp.Cards)
	assert.Equal(t, stats, resp.Stats)
	require.NotNil(t, resp.GlobalPrice.Amount)
	assert.Equal(t, 9.99, *resp.GlobalPrice.Amount)

	cards.AssertExpectations(t)
	prices.AssertExpectations(t)
}

func TestAdminService_SetCardStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	now := time.Now()
	updated := &model.GiftCard{
		ID:        uuid.New(),
		Code:      "ABC123",
		Status:    model.StatusAccepted,
		CreatedAt: now.Add(-time.Minute),
		UpdatedAt: &now,
	}

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	// The admin path normalises the code exactly like the customer path.
	cards.On("SetStatus", ctx, "ABC123", model.StatusAccepted).Return(updated, nil)

	svc := NewAdminService(cards, prices, logger)

	got, err := svc.SetCardStatus(ctx, "abc123", "accepted")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	cards.AssertExpectations(t)
}

func TestAdminService_SetCardStatus_InvalidStatusPassedThrough(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	cards.On("SetStatus", ctx, "ABC123", model.Status("approved")).Return(nil, model.ErrInvalidStatus)

	svc := NewAdminService(cards, prices, logger)

	_, err := svc.SetCardStatus(ctx, "ABC123", "approved")
	assert.Equal(t, model.ErrInvalidStatus, err)
}

func TestAdminService_SetCardStatus_InvalidCode(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)

	svc := NewAdminService(cards, prices, logger)

	_, err := svc.SetCardStatus(ctx, "abc-123!", "accepted")
	assert.Equal(t, model.ErrInvalidFormat, err)
	cards.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_SetCardPrice_ExplicitCurrency(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	expected := model.Money{Amount: 4.5, Currency: "EUR"}
	updated := &model.GiftCard{ID: uuid.New(), Code: "ABC123", Price: &expected}

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	cards.On("SetPrice", ctx, "ABC123", &expected).Return(updated, nil)

	svc := NewAdminService(cards, prices, logger)

	got, err := svc.SetCardPrice(ctx, "ABC123", &model.SetPriceRequest{
		Amount:   floatPtr(4.5),
		Currency: stringPtr("EUR"),
	})
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	// The global price is irrelevant when the currency is explicit.
	prices.AssertNotCalled(t, "Get", mock.Anything)
}

func TestAdminService_SetCardPrice_DefaultsToGlobalCurrency(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	global := &model.GlobalPrice{
		Price:     model.Money{Amount: 9.99, Currency: "GBP"},
		UpdatedAt: time.Now(),
	}
	expected := model.Money{Amount: 4.5, Currency: "GBP"}
	updated := &model.GiftCard{ID: uuid.New(), Code: "ABC123", Price: &expected}

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	prices.On("Get", ctx).Return(global, nil)
	cards.On("SetPrice", ctx, "ABC123", &expected).Return(updated, nil)

	svc := NewAdminService(cards, prices, logger)

	_, err := svc.SetCardPrice(ctx, "ABC123", &model.SetPriceRequest{Amount: floatPtr(4.5)})
	require.NoError(t, err)

	cards.AssertExpectations(t)
}

func TestAdminService_SetCardPrice_DefaultsToUSDWithoutGlobal(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	expected := model.Money{Amount: 4.5, Currency: "USD"}
	updated := &model.GiftCard{ID: uuid.New(), Code: "ABC123", Price: &expected}

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	prices.On("Get", ctx).Return(nil, nil)
	cards.On("SetPrice", ctx, "ABC123", &expected).Return(updated, nil)

	svc := NewAdminService(cards, prices, logger)

	_, err := svc.SetCardPrice(ctx, "ABC123", &model.SetPriceRequest{Amount: floatPtr(4.5)})
	require.NoError(t, err)

	cards.AssertExpectations(t)
}

func TestAdminService_SetCardPrice_ClearOverride(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	now := time.Now()
	updated := &model.GiftCard{ID: uuid.New(), Code: "ABC123", UpdatedAt: &now}

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	cards.On("SetPrice", ctx, "ABC123", (*model.Money)(nil)).Return(updated, nil)

	svc := NewAdminService(cards, prices, logger)

	got, err := svc.SetCardPrice(ctx, "ABC123", &model.SetPriceRequest{})
	require.NoError(t, err)
	assert.Nil(t, got.Price)

	cards.AssertExpectations(t)
}

func TestAdminService_SetCardPrice_InvalidAmount(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)

	svc := NewAdminService(cards, prices, logger)

	_, err := svc.SetCardPrice(ctx, "ABC123", &model.SetPriceRequest{
		Amount:   floatPtr(-1),
		Currency: stringPtr("USD"),
	})
	assert.Equal(t, model.ErrInvalidPrice, err)
	cards.AssertNotCalled(t, "SetPrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_DeleteCard(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	cards.On("Delete", ctx, "ABC123").Return(nil)

	svc := NewAdminService(cards, prices, logger)

	require.NoError(t, svc.DeleteCard(ctx, "abc123"))
	cards.AssertExpectations(t)
}

func TestAdminService_DeleteCard_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	cards.On("Delete", ctx, "MISSING").Return(model.ErrCardNotFound)

	svc := NewAdminService(cards, prices, logger)

	assert.Equal(t, model.ErrCardNotFound, svc.DeleteCard(ctx, "MISSING"))
}

func TestAdminService_SetGlobalPrice(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	money := model.Money{Amount: 9.99, Currency: "USD"}
	stored := &model.GlobalPrice{Price: money, UpdatedAt: time.Now()}

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)
	prices.On("Set", ctx, money).Return(stored, nil)

	svc := NewAdminService(cards, prices, logger)

	resp, err := svc.SetGlobalPrice(ctx, &model.SetGlobalPriceRequest{
		Amount:   floatPtr(9.99),
		Currency: stringPtr("USD"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Amount)
	assert.Equal(t, 9.99, *resp.Amount)
	assert.Equal(t, "USD", resp.Currency)

	prices.AssertExpectations(t)
}

func TestAdminService_SetGlobalPrice_MissingFields(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cards := new(MockCardRepository)
	prices := new(MockGlobalPriceRepository)

	svc := NewAdminService(cards, prices, logger)

	tests := []struct {
		name string
		req  *model.SetGlobalPriceRequest
	}{
		{name: "Missing amount", req: &model.SetGlobalPriceRequest{Currency: stringPtr("USD")}},
		{name: "Missing currency", req: &model.SetGlobalPriceRequest{Amount: floatPtr(9.99)}},
		{name: "Unsupported currency", req: &model.SetGlobalPriceRequest{Amount: floatPtr(9.99), Currency: stringPtr("CHF")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetGlobalPrice(ctx, tt.req)
			assert.Equal(t, model.ErrInvalidPrice, err)
		})
	}

	prices.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}
