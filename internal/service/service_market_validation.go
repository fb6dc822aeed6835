package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/market-proxy/internal/validators"
	"github.com/MKhiriev/market-proxy/models"
)

// MarketValidationService rejects malformed requests before they reach the
// wrapped MarketService. Every rejection wraps ErrInvalidDataProvided.
type MarketValidationService struct {
	inner     MarketService
	validator validators.Validator
}

func NewMarketValidationService() MarketServiceWrapper {
	return &MarketValidationService{
		validator: validators.NewMarketValidator(),
	}
}

func (v *MarketValidationService) GetConfig(ctx context.Context) (models.MarketConfig, error) {
	return v.inner.GetConfig(ctx)
}

func (v *MarketValidationService) GetWalletLimits(ctx context.Context) (models.WalletLimits, error) {
	return v.inner.GetWalletLimits(ctx)
}

func (v *MarketValidationService) GetWalletHistory(ctx context.Context, query models.WalletHistoryQuery) (models.WalletHistory, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.WalletHistory{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetWalletHistory(ctx, query)
}

func (v *MarketValidationService) GetWalletBalance(ctx context.Context) (models.WalletBalance, error) {
	return v.inner.GetWalletBalance(ctx)
}

func (v *MarketValidationService) ListNFTs(ctx context.Context) (models.NFTList, error) {
	return v.inner.ListNFTs(ctx)
}

func (v *MarketValidationService) SearchNFTs(ctx context.Context, query models.SearchQuery) (json.RawMessage, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SearchNFTs(ctx, query)
}

func (v *MarketValidationService) GetBackdrops(ctx context.Context) ([]models.Backdrop, error) {
	return v.inner.GetBackdrops(ctx)
}

func (v *MarketValidationService) GetBackdropFloors(ctx context.Context) (models.FloorPrices, error) {
	return v.inner.GetBackdropFloors(ctx)
}

func (v *MarketValidationService) BuyNFTs(ctx context.Context, req models.BuyRequest) (json.RawMessage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.BuyNFTs(ctx, req)
}

func (v *MarketValidationService) WithdrawNFTs(ctx context.Context, req models.WithdrawRequest) (json.RawMessage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.WithdrawNFTs(ctx, req)
}

func (v *MarketValidationService) GetUserActions(ctx context.Context, page models.Page) (models.UserActions, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return models.UserActions{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetUserActions(ctx, page)
}

func (v *MarketValidationService) Wrap(wrapper MarketService) MarketService {
	v.inner = wrapper
	return v
}
