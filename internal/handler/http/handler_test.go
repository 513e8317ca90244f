package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/metrics"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/mock"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, nil, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_NilMetricsAllowed(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, logger.Nop())

	assert.Nil(t, h.metrics)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with gomock-backed services suitable for
// routing tests.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockStampService, *mock.MockWalletService) {
	t.Helper()

	stampSvc := mock.NewMockStampService(ctrl)
	walletSvc := mock.NewMockWalletService(ctrl)

	svcs := &service.Services{
		StampService:  stampSvc,
		WalletService: walletSvc,
	}

	return NewHandler(svcs, metrics.New(), logger.Nop()), stampSvc, walletSvc
}

func TestInit_ReturnsRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	require.NotNil(t, h.Init())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Liveness
// ─────────────────────────────────────────────

func TestLiveness_ReturnsAliveWithoutNodeCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT calls registered: any service invocation would fail the test
	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// Trace-ID middleware
// ─────────────────────────────────────────────

func TestWithTraceID_GeneratesHeaderWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_EchoesIncomingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}
