package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/adapter"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
	"github.com/MKhiriev/swarm-stamp-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// GET /api/v1/stamps/{batch_id}
// ─────────────────────────────────────────────

func TestGetStamp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, stampSvc, _ := newTestHandler(t, ctrl)
	router := h.Init()

	expires := time.Date(2024, 1, 1, 0, 1, 40, 0, time.UTC)
	stampSvc.EXPECT().
		GetStamp(gomock.Any(), "abc123").
		Return(models.StampDetails{
			BatchID:   "abc123",
			Usable:    true,
			Depth:     20,
			Amount:    "1000",
			BatchTTL:  100,
			Exists:    true,
			ExpiresAt: &expires,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stamps/abc123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"batchID":"abc123"`)
	assert.Contains(t, rec.Body.String(), `"expiresAt":"2024-01-01T00:01:40Z"`)
}

func TestGetStamp_SuccessWithoutExpiration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, stampSvc, _ := newTestHandler(t, ctrl)
	router := h.Init()

	stampSvc.EXPECT().
		GetStamp(gomock.Any(), "abc123").
		Return(models.StampDetails{BatchID: "abc123"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stamps/abc123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "expiresAt")
}

func TestGetStamp_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, stampSvc, _ := newTestHandler(t, ctrl)
	router := h.Init()

	stampSvc.EXPECT().
		GetStamp(gomock.Any(), "deadbeef").
		Return(models.StampDetails{}, fmt.Errorf("%w: batch_id=deadbeef", service.ErrStampNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stamps/deadbeef", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"stamp not found for batch_id=deadbeef"}`, rec.Body.String())
}

func TestGetStamp_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "node unreachable maps to 502",
			serviceErr: fmt.Errorf("fetch stamps: %w", adapter.ErrNodeUnreachable),
			wantStatus: http.StatusBadGateway,
			wantDetail: "failed to fetch data from the node API",
		},
		{
			name:       "node rejection maps to 502",
			serviceErr: fmt.Errorf("fetch stamps: %w: 503", adapter.ErrNodeStatus),
			wantStatus: http.StatusBadGateway,
			wantDetail: "failed to fetch data from the node API",
		},
		{
			name:       "node timeout maps to 504",
			serviceErr: fmt.Errorf("fetch stamps: %w", adapter.ErrNodeTimeout),
			wantStatus: http.StatusGatewayTimeout,
			wantDetail: "node API request timed out",
		},
		{
			name:       "malformed node response maps to 500",
			serviceErr: fmt.Errorf("fetch stamps: %w", adapter.ErrMalformedResponse),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "invalid response from the node API",
		},
		{
			name:       "stamp validation failure maps to 500",
			serviceErr: fmt.Errorf("build stamp: %w", models.ErrMissingBatchID),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "invalid response from the node API",
		},
		{
			name:       "unclassified error maps to 500",
			serviceErr: fmt.Errorf("something broke"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "an unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, stampSvc, _ := newTestHandler(t, ctrl)
			router := h.Init()

			stampSvc.EXPECT().
				GetStamp(gomock.Any(), "abc123").
				Return(models.StampDetails{}, tt.serviceErr)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/stamps/abc123", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tt.wantDetail), rec.Body.String())
		})
	}
}

func TestGetStamp_BatchIDPassedVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, stampSvc, _ := newTestHandler(t, ctrl)
	router := h.Init()

	// mixed case must survive routing untouched
	stampSvc.EXPECT().
		GetStamp(gomock.Any(), "AbCdEf").
		Return(models.StampDetails{BatchID: "AbCdEf"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stamps/AbCdEf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
