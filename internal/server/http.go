package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
)

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(address string, handler http.Handler, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    address,
			Handler: handler,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.logger.Err(err).Str("address", h.server.Addr).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Str("address", h.server.Addr).Msg("HTTP server Shutdown")
	}
}
