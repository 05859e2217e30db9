package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/localsquare/tokenledger/pkg/uow"
)

type AppServices struct {
	WalletService     *WalletService
	EscrowCoordinator *EscrowCoordinator
}

func Factory(unitOfWork uow.UOW, gateway FundsGateway, l *logrus.Logger) (*AppServices, error) {
	walletService, walletServiceErr := NewWalletService(unitOfWork, gateway, l)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	return &AppServices{
		WalletService:     walletService,
		EscrowCoordinator: NewEscrowCoordinator(walletService),
	}, nil
}
