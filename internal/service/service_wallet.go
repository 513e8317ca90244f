package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/adapter"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

// walletService is the concrete implementation of WalletService.
// Both operations are plain pass-throughs to the node adapter; the service
// layer exists so handlers never depend on the transport directly.
type walletService struct {
	nodeAdapter adapter.NodeAdapter

	logger *logger.Logger
}

// NewWalletService constructs a WalletService backed by nodeAdapter.
func NewWalletService(nodeAdapter adapter.NodeAdapter, logger *logger.Logger) WalletService {
	return &walletService{
		nodeAdapter: nodeAdapter,
		logger:      logger,
	}
}

// GetWallet implements [WalletService].
func (s *walletService) GetWallet(ctx context.Context) (models.WalletInfo, error) {
	wallet, err := s.nodeAdapter.GetWalletInfo(ctx)
	if err != nil {
		return models.WalletInfo{}, fmt.Errorf("fetch wallet info: %w", err)
	}

	return wallet, nil
}

// GetChequebook implements [WalletService].
func (s *walletService) GetChequebook(ctx context.Context) (models.ChequebookInfo, error) {
	chequebook, err := s.nodeAdapter.GetChequebookInfo(ctx)
	if err != nil {
		return models.ChequebookInfo{}, fmt.Errorf("fetch chequebook info: %w", err)
	}

	return chequebook, nil
}
