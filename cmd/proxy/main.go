package main

import (
	"fmt"

	"github.com/MKhiriev/market-proxy/internal/adapter"
	"github.com/MKhiriev/market-proxy/internal/config"
	"github.com/MKhiriev/market-proxy/internal/handler"
	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/internal/server"
	"github.com/MKhiriev/market-proxy/internal/service"
	"github.com/MKhiriev/market-proxy/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("market-proxy")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// the auth token is never logged
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("route_prefix", cfg.Server.RoutePrefix).
		Str("upstream", cfg.Upstream.BaseURL).
		Dur("upstream_timeout", cfg.Upstream.RequestTimeout).
		Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("market proxy stopped")
	}
}

// newMarketAdapter is replaced in tests.
var newMarketAdapter = adapter.NewMarketAdapter

// run wires the proxy and serves until a stop signal. The market adapter is
// closed on every return path once it has been created.
func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	marketAdapter, err := newMarketAdapter(cfg.Upstream, log)
	if err != nil {
		return fmt.Errorf("error creating market adapter: %w", err)
	}
	defer marketAdapter.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(marketAdapter, *cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
