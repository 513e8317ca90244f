package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/config"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/handler"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/metrics"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer
	logger        *logger.Logger
}

// NewServer assembles the gateway's listeners from the merged configuration.
// The API server is always created; the metrics server only when
// cfg.MetricsAddress is set (m may be nil otherwise).
func NewServer(handlers *handler.Handlers, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(cfg.HTTPAddress, handlers.HTTP.Init(), logger)
	}
	if cfg.MetricsAddress != "" && m != nil {
		servers.metricsServer = newHTTPServer(cfg.MetricsAddress, m.Handler(), logger)
	}

	if servers.httpServer == nil && servers.metricsServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	if s.metricsServer != nil {
		s.metricsServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil && s.metricsServer == nil {
		return errNoServersAreCreated
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.metricsServer != nil {
		s.logger.Info().Msg("Launching metrics server")
		go s.metricsServer.RunServer()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
