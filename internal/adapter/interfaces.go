// Package adapter provides the outbound transport layer for communicating
// with the upstream Swarm Bee node.
//
// The primary abstraction is [NodeAdapter], which decouples the service layer
// from the node's HTTP API. The package ships an HTTP implementation
// ([NewHTTPNodeAdapter]) built on resty.
//
// Error values defined in errors.go classify every failure of an outbound
// call into a distinct kind (unreachable, timeout, rejected status, malformed
// body) so that callers can use [errors.Is] for transport-agnostic error
// handling and the HTTP layer can map each kind to a stable status code.
package adapter

import (
	"context"

	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/node_adapter_mock.go -package=mock

// NodeAdapter defines communication with the upstream Swarm Bee node.
// Implementations are responsible for request deadlines, envelope
// normalization, and mapping transport-level failures to the sentinel values
// defined in this package.
//
// Every method performs exactly one attempt per call; retry policy, if any,
// belongs to the caller.
type NodeAdapter interface {
	// FetchAllStamps retrieves every postage stamp batch known to the node.
	// The node's envelope ambiguity (bare array vs object wrapping an array
	// under "stamps" or "batches") is erased here: the result is always an
	// ordered slice preserving upstream order, with record contents untouched.
	FetchAllStamps(ctx context.Context) ([]models.RawStamp, error)

	// GetWalletInfo retrieves the node's wallet address and BZZ balance.
	GetWalletInfo(ctx context.Context) (models.WalletInfo, error)

	// GetChequebookInfo retrieves the node's chequebook address and, when
	// available, its balances. A failing balance lookup degrades to an
	// address-only result instead of an error.
	GetChequebookInfo(ctx context.Context) (models.ChequebookInfo, error)
}
