package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/metrics"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

type Handler struct {
	services *service.Services

	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set. metrics may be nil, in which
// case request counting is skipped.
func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its HTTP status and writes the JSON error body.
func writeError(w http.ResponseWriter, err error, detail string) {
	writeJSON(w, statusFromError(err), models.ErrorResponse{Detail: detail})
}
