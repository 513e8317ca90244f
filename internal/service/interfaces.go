package service

import (
	"context"

	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// StampService owns the stamp lookup pipeline: fetch all batches from the
// node, resolve the requested batch ID, derive the expiration instant, and
// build the validated response record.
type StampService interface {
	// GetStamp returns the stamp batch matching batchID.
	//
	// The match is an exact, case-sensitive comparison against the batchID
	// field of each upstream record, first match in upstream order winning
	// when duplicates occur. Returns [ErrStampNotFound] when no record
	// matches, or an adapter/model error when the upstream call or record
	// construction fails.
	//
	// Each call performs exactly one upstream fetch; no state is shared or
	// cached between calls, so concurrent invocations are fully independent.
	GetStamp(ctx context.Context, batchID string) (models.StampDetails, error)
}

// WalletService exposes the node's wallet and chequebook information.
type WalletService interface {
	// GetWallet returns the node's wallet address and BZZ balance.
	GetWallet(ctx context.Context) (models.WalletInfo, error)

	// GetChequebook returns the node's chequebook address and balances.
	GetChequebook(ctx context.Context) (models.ChequebookInfo, error)
}
