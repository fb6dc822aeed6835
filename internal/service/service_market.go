package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/market-proxy/internal/adapter"
	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/models"
)

type marketService struct {
	marketAdapter adapter.MarketAdapter

	logger *logger.Logger
}

func NewMarketService(marketAdapter adapter.MarketAdapter, logger *logger.Logger) MarketService {
	return &marketService{
		marketAdapter: marketAdapter,
		logger:        logger,
	}
}

func (m *marketService) GetConfig(ctx context.Context) (models.MarketConfig, error) {
	return m.marketAdapter.GetConfig(ctx)
}

func (m *marketService) GetWalletLimits(ctx context.Context) (models.WalletLimits, error) {
	return m.marketAdapter.GetWalletLimits(ctx)
}

func (m *marketService) GetWalletHistory(ctx context.Context, query models.WalletHistoryQuery) (models.WalletHistory, error) {
	return m.marketAdapter.GetWalletHistory(ctx, query)
}

func (m *marketService) GetWalletBalance(ctx context.Context) (models.WalletBalance, error) {
	return m.marketAdapter.GetWalletBalance(ctx)
}

func (m *marketService) ListNFTs(ctx context.Context) (models.NFTList, error) {
	return m.marketAdapter.ListNFTs(ctx)
}

func (m *marketService) SearchNFTs(ctx context.Context, query models.SearchQuery) (json.RawMessage, error) {
	return m.marketAdapter.SearchNFTs(ctx, query)
}

func (m *marketService) GetBackdrops(ctx context.Context) ([]models.Backdrop, error) {
	return m.marketAdapter.GetBackdrops(ctx)
}

func (m *marketService) GetBackdropFloors(ctx context.Context) (models.FloorPrices, error) {
	return m.marketAdapter.GetBackdropFloors(ctx)
}

func (m *marketService) BuyNFTs(ctx context.Context, req models.BuyRequest) (json.RawMessage, error) {
	logger.FromContextOr(ctx, m.logger).Info().Int("count", len(req.NFTDetails)).Msg("forwarding NFT purchase")
	return m.marketAdapter.BuyNFTs(ctx, req)
}

func (m *marketService) WithdrawNFTs(ctx context.Context, req models.WithdrawRequest) (json.RawMessage, error) {
	logger.FromContextOr(ctx, m.logger).Info().Int("count", len(req.GiftIDs)).Msg("forwarding NFT withdrawal")
	return m.marketAdapter.WithdrawNFTs(ctx, req)
}

func (m *marketService) GetUserActions(ctx context.Context, page models.Page) (models.UserActions, error) {
	return m.marketAdapter.GetUserActions(ctx, page)
}
