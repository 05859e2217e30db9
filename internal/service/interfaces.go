package service

import (
	"context"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type WalletRepository interface {
	Find(ctx context.Context, userID int64) (*domain.Wallet, error)
	Create(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error)
	UpdateCAS(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, entry repoargs.TransactionEntryCreate) (*domain.TransactionEntry, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.TransactionEntry, error)
	FindHold(ctx context.Context, relatedID string) (*domain.TransactionEntry, error)
	FindResolution(ctx context.Context, relatedID string) (*domain.TransactionEntry, error)
	ResolvePending(
		ctx context.Context,
		id int64,
		status domain.TransactionStatusType,
	) (*domain.TransactionEntry, error)
}

// FundsGateway узкий интерфейс внешней платежной способности: списание реальных денег
// за покупку токенов. Реализация в этом сервисе — заглушка, интеграция с реальным
// шлюзом живет в отдельной системе.
type FundsGateway interface {
	Charge(ctx context.Context, args ChargeArgs) error
}

// EscrowLedger часть операций кошелька, нужная координатору эскроу. Интерфейс
// исключительно для моков.
type EscrowLedger interface {
	HoldEscrow(
		ctx context.Context,
		userID int64,
		amount int64,
		relatedID string,
	) (*domain.Wallet, *domain.TransactionEntry, error)
	ReleaseEscrow(ctx context.Context, relatedID string, payeeID int64) (*domain.TransactionEntry, error)
	RefundEscrow(ctx context.Context, relatedID string) (*domain.TransactionEntry, error)
}
