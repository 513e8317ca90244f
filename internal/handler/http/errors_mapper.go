package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/adapter"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

var errorStatusMap = map[error]int{
	service.ErrStampNotFound: http.StatusNotFound,

	adapter.ErrNodeUnreachable:   http.StatusBadGateway,
	adapter.ErrNodeStatus:        http.StatusBadGateway,
	adapter.ErrNodeTimeout:       http.StatusGatewayTimeout,
	adapter.ErrMalformedResponse: http.StatusInternalServerError,

	models.ErrMissingBatchID: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError produces the stable human-readable detail string for the
// JSON error body. The upstream's original failure text is logged, not
// echoed, so the external contract stays independent of node internals.
func detailFromError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNodeTimeout):
		return "node API request timed out"
	case errors.Is(err, adapter.ErrNodeUnreachable), errors.Is(err, adapter.ErrNodeStatus):
		return "failed to fetch data from the node API"
	case errors.Is(err, adapter.ErrMalformedResponse), errors.Is(err, models.ErrMissingBatchID):
		return "invalid response from the node API"
	default:
		return "an unexpected error occurred"
	}
}
