package server

import (
	"testing"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/config"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/handler"
	httphandler "github.com/MKhiriev/swarm-stamp-gateway/internal/handler/http"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/metrics"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handler.Handlers {
	log := logger.Nop()
	return &handler.Handlers{
		HTTP: httphandler.NewHandler(&service.Services{}, nil, log),
	}
}

func TestNewServer_HTTPOnly(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)

	impl, ok := srv.(*server)
	require.True(t, ok)
	assert.NotNil(t, impl.httpServer)
	assert.Nil(t, impl.metricsServer)
}

func TestNewServer_WithMetrics(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), metrics.New(), config.Server{
		HTTPAddress:    ":0",
		MetricsAddress: ":0",
	}, logger.Nop())

	require.NoError(t, err)

	impl := srv.(*server)
	assert.NotNil(t, impl.httpServer)
	assert.NotNil(t, impl.metricsServer)
}

func TestNewServer_MetricsAddressWithoutCollectors(t *testing.T) {
	// metrics address set but no collectors constructed: only the API
	// listener comes up
	srv, err := NewServer(newTestHandlers(), nil, config.Server{
		HTTPAddress:    ":0",
		MetricsAddress: ":0",
	}, logger.Nop())

	require.NoError(t, err)

	impl := srv.(*server)
	assert.NotNil(t, impl.httpServer)
	assert.Nil(t, impl.metricsServer)
}

func TestNewServer_NoAddressesFails(t *testing.T) {
	_, err := NewServer(newTestHandlers(), nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestShutdown_NilServersIsSafe(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.NotPanics(t, s.Shutdown)
}
