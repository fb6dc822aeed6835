package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/market-proxy/internal/config"
	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/models"
)

// notAvailable is what main prints for build fields the linker did not set.
const notAvailable = "N/A"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService resolves the version reported by the proxy. The
// configured version wins; otherwise the linker-injected build version is
// used. When neither is known the version is reported as "N/A".
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = strings.TrimSpace(buildInfo.BuildVersion())
	}
	if version == "" || version == notAvailable {
		logger.Warn().Msg("app version is not specified")
		version = notAvailable
	}

	logger.Debug().Str("version", version).Msg("app version resolved")

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
