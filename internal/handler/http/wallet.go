package http

import (
	"net/http"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
)

// getWallet serves GET /api/v1/wallet with the node's wallet address and
// BZZ balance.
func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	wallet, err := h.services.WalletService.GetWallet(r.Context())
	if err != nil {
		log.Err(err).Msg("wallet lookup failed")
		writeError(w, err, detailFromError(err))
		return
	}

	log.Info().Str("wallet_address", wallet.WalletAddress).Msg("wallet info returned")
	writeJSON(w, http.StatusOK, wallet)
}

// getChequebook serves GET /api/v1/chequebook/address with the node's
// chequebook address and balances.
func (h *Handler) getChequebook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	chequebook, err := h.services.WalletService.GetChequebook(r.Context())
	if err != nil {
		log.Err(err).Msg("chequebook lookup failed")
		writeError(w, err, detailFromError(err))
		return
	}

	log.Info().Str("chequebook_address", chequebook.ChequebookAddress).Msg("chequebook info returned")
	writeJSON(w, http.StatusOK, chequebook)
}
