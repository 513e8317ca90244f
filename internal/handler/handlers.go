package handler

import (
	"github.com/MKhiriev/swarm-stamp-gateway/internal/handler/http"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/metrics"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, m, logger),
	}
}
