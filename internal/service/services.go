package service

import (
	"github.com/MKhiriev/market-proxy/internal/adapter"
	"github.com/MKhiriev/market-proxy/internal/config"
	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/models"
)

type Services struct {
	MarketService  MarketService
	AppInfoService AppInfoService
}

// NewServices builds the service layer on top of marketAdapter. The market
// service is wrapped with request validation.
func NewServices(marketAdapter adapter.MarketAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if marketAdapter == nil {
		return nil, ErrMarketAdapterIsNotSpecified
	}

	appInfoService := NewAppInfoService(cfg.App, buildInfo, logger)
	marketService := NewMarketValidationService().Wrap(NewMarketService(marketAdapter, logger))

	return &Services{
		MarketService:  marketService,
		AppInfoService: appInfoService,
	}, nil
}
