package service

import (
	"github.com/MKhiriev/swarm-stamp-gateway/internal/adapter"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
)

type Services struct {
	StampService  StampService
	WalletService WalletService
}

func NewServices(nodeAdapter adapter.NodeAdapter, logger *logger.Logger) *Services {
	return &Services{
		StampService:  NewStampService(nodeAdapter, logger),
		WalletService: NewWalletService(nodeAdapter, logger),
	}
}
