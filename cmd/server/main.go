package main

import (
	"fmt"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/adapter"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/config"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/handler"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/metrics"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/server"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stamp-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	nodeAdapter, err := adapter.NewHTTPNodeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating node adapter")
	}

	services := service.NewServices(nodeAdapter, log)

	var m *metrics.Metrics
	if cfg.Server.MetricsAddress != "" {
		m = metrics.New()
	}

	handlers := handler.NewHandlers(services, m, log)

	srv, err := server.NewServer(handlers, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
