package http

import (
	"net/http"

	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

// liveness serves GET / as a lightweight liveness probe. It never contacts
// the node, so it stays green even when the upstream is down.
func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.LivenessResponse{Status: "alive"})
}
