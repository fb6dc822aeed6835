package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/market-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MarketService exposes one method per proxied marketplace route.
type MarketService interface {
	GetConfig(ctx context.Context) (models.MarketConfig, error)

	GetWalletLimits(ctx context.Context) (models.WalletLimits, error)
	GetWalletHistory(ctx context.Context, query models.WalletHistoryQuery) (models.WalletHistory, error)
	GetWalletBalance(ctx context.Context) (models.WalletBalance, error)

	ListNFTs(ctx context.Context) (models.NFTList, error)
	SearchNFTs(ctx context.Context, query models.SearchQuery) (json.RawMessage, error)

	GetBackdrops(ctx context.Context) ([]models.Backdrop, error)
	GetBackdropFloors(ctx context.Context) (models.FloorPrices, error)

	BuyNFTs(ctx context.Context, req models.BuyRequest) (json.RawMessage, error)
	WithdrawNFTs(ctx context.Context, req models.WithdrawRequest) (json.RawMessage, error)

	GetUserActions(ctx context.Context, page models.Page) (models.UserActions, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MarketServiceWrapper defines middleware composition for MarketService.
// Implementations wrap an existing MarketService to add behavior such as
// logging or validating.
type MarketServiceWrapper interface {
	Wrap(MarketService) MarketService // returns a decorated MarketService applying additional behavior
}
