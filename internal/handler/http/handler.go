package http

import (
	"strings"

	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/internal/service"
)

type Handler struct {
	services *service.Services

	routePrefix string

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. routePrefix is prepended to every
// route; a trailing slash is dropped.
func NewHandler(services *service.Services, routePrefix string, logger *logger.Logger) *Handler {
	logger.Info().Str("prefix", routePrefix).Msg("http handler created")
	return &Handler{
		services:    services,
		routePrefix: strings.TrimRight(routePrefix, "/"),
		logger:      logger,
	}
}
