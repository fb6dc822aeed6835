package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/market-proxy/internal/mock"
	"github.com/MKhiriev/market-proxy/internal/validators"
	"github.com/MKhiriev/market-proxy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newValidatedSvc wraps a gomock MarketService with the real validator.
func newValidatedSvc(t *testing.T) (MarketService, *mock.MockMarketService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockMarketService(ctrl)
	return NewMarketValidationService().Wrap(inner), inner
}

// ─────────────────────────────────────────────
// Rejections never reach the inner service
// ─────────────────────────────────────────────

func TestMarketValidationService_RejectsBeforeInner(t *testing.T) {
	tests := []struct {
		name    string
		call    func(svc MarketService) error
		wantErr error
	}{
		{
			name: "history negative offset",
			call: func(svc MarketService) error {
				_, err := svc.GetWalletHistory(context.Background(), models.WalletHistoryQuery{Page: models.Page{Offset: -1, Limit: 30}})
				return err
			},
			wantErr: validators.ErrInvalidOffset,
		},
		{
			name: "history zero limit",
			call: func(svc MarketService) error {
				_, err := svc.GetWalletHistory(context.Background(), models.WalletHistoryQuery{Page: models.Page{Limit: 0}})
				return err
			},
			wantErr: validators.ErrInvalidLimit,
		},
		{
			name: "search negative offset",
			call: func(svc MarketService) error {
				_, err := svc.SearchNFTs(context.Background(), models.SearchQuery{Page: models.Page{Offset: -3, Limit: 20}, SortBy: "price asc", Status: "listed"})
				return err
			},
			wantErr: validators.ErrInvalidOffset,
		},
		{
			name: "actions zero limit",
			call: func(svc MarketService) error {
				_, err := svc.GetUserActions(context.Background(), models.Page{Offset: 0, Limit: 0})
				return err
			},
			wantErr: validators.ErrInvalidLimit,
		},
		{
			name: "buy empty list",
			call: func(svc MarketService) error {
				_, err := svc.BuyNFTs(context.Background(), models.BuyRequest{})
				return err
			},
			wantErr: validators.ErrEmptyNFTDetails,
		},
		{
			name: "buy bad price",
			call: func(svc MarketService) error {
				_, err := svc.BuyNFTs(context.Background(), models.BuyRequest{NFTDetails: []models.NFTPurchase{{ID: "a", Price: "1,50"}}})
				return err
			},
			wantErr: validators.ErrInvalidPrice,
		},
		{
			name: "withdraw empty list",
			call: func(svc MarketService) error {
				_, err := svc.WithdrawNFTs(context.Background(), models.WithdrawRequest{GiftIDs: []string{}})
				return err
			},
			wantErr: validators.ErrEmptyGiftIDs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT on inner: any call fails the test
			svc, _ := newValidatedSvc(t)

			err := tt.call(svc)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Valid input is forwarded unchanged
// ─────────────────────────────────────────────

func TestMarketValidationService_ForwardsValidInput(t *testing.T) {
	svc, inner := newValidatedSvc(t)
	ctx := context.Background()

	history := models.WalletHistoryQuery{Page: models.Page{Offset: 0, Limit: 30}}
	search := models.SearchQuery{Page: models.Page{Offset: 0, Limit: 20}, SortBy: "price asc", Status: "listed"}
	buy := models.BuyRequest{NFTDetails: []models.NFTPurchase{{ID: "abc", Price: "1.50"}}}
	withdraw := models.WithdrawRequest{GiftIDs: []string{"g1"}}
	page := models.Page{Offset: 0, Limit: 20}

	inner.EXPECT().GetWalletHistory(ctx, history).Return(models.WalletHistory{Actions: []models.WalletAction{}}, nil)
	inner.EXPECT().SearchNFTs(ctx, search).Return(json.RawMessage(`{}`), nil)
	inner.EXPECT().BuyNFTs(ctx, buy).Return(json.RawMessage(`{"status":"ok"}`), nil)
	inner.EXPECT().WithdrawNFTs(ctx, withdraw).Return(json.RawMessage(`{"status":"ok"}`), nil)
	inner.EXPECT().GetUserActions(ctx, page).Return(models.UserActions{}, nil)

	_, err := svc.GetWalletHistory(ctx, history)
	require.NoError(t, err)
	_, err = svc.SearchNFTs(ctx, search)
	require.NoError(t, err)
	got, err := svc.BuyNFTs(ctx, buy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(got))
	_, err = svc.WithdrawNFTs(ctx, withdraw)
	require.NoError(t, err)
	_, err = svc.GetUserActions(ctx, page)
	require.NoError(t, err)
}

func TestMarketValidationService_ParameterlessCallsPassThrough(t *testing.T) {
	svc, inner := newValidatedSvc(t)
	ctx := context.Background()

	inner.EXPECT().GetConfig(ctx).Return(models.MarketConfig{Commission: "5"}, nil)
	inner.EXPECT().GetWalletLimits(ctx).Return(models.WalletLimits{}, nil)
	inner.EXPECT().GetWalletBalance(ctx).Return(models.WalletBalance{Balance: "1"}, nil)
	inner.EXPECT().ListNFTs(ctx).Return(models.NFTList{}, nil)
	inner.EXPECT().GetBackdrops(ctx).Return([]models.Backdrop{}, nil)
	inner.EXPECT().GetBackdropFloors(ctx).Return(models.FloorPrices{}, nil)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5", cfg.Commission)
	_, err = svc.GetWalletLimits(ctx)
	require.NoError(t, err)
	balance, err := svc.GetWalletBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", balance.Balance)
	_, err = svc.ListNFTs(ctx)
	require.NoError(t, err)
	_, err = svc.GetBackdrops(ctx)
	require.NoError(t, err)
	_, err = svc.GetBackdropFloors(ctx)
	require.NoError(t, err)
}

func TestMarketValidationService_UsesInjectedValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockMarketService(ctrl)
	validator := mock.NewMockValidator(ctrl)
	ctx := context.Background()

	svc := &MarketValidationService{inner: inner, validator: validator}
	page := models.Page{Offset: 0, Limit: 1}
	boom := errors.New("boom")

	validator.EXPECT().Validate(ctx, page).Return(boom)

	_, err := svc.GetUserActions(ctx, page)

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMarketValidationService_Wrap_ReturnsDecorator(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockMarketService(ctrl)

	wrapped := NewMarketValidationService().Wrap(inner)

	decorator, ok := wrapped.(*MarketValidationService)
	require.True(t, ok)
	assert.Same(t, inner, decorator.inner)
}
