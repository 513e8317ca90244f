package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/service"
	"github.com/go-chi/chi/v5"
)

// getStamp serves GET /api/v1/stamps/{batch_id}.
//
// Outcome mapping: 200 with the stamp record; 404 when the batch ID is not
// present in the node's listing; 502 when the node is unreachable or rejects
// the request; 504 when the node call times out; 500 when the node's response
// shape is unrecognized or the matched record fails validation.
func (h *Handler) getStamp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	batchID := chi.URLParam(r, "batch_id")

	stamp, err := h.services.StampService.GetStamp(r.Context(), batchID)
	if err != nil {
		log.Err(err).Str("batch_id", batchID).Msg("stamp lookup failed")

		if errors.Is(err, service.ErrStampNotFound) {
			writeError(w, err, fmt.Sprintf("stamp not found for batch_id=%s", batchID))
			return
		}
		writeError(w, err, detailFromError(err))
		return
	}

	log.Info().Str("batch_id", batchID).Msg("stamp resolved")
	writeJSON(w, http.StatusOK, stamp)
}
