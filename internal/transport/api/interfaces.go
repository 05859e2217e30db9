package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/service"
)

// WalletServicer интерфейс исключительно для моков.
type WalletServicer interface {
	GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int64) ([]domain.TransactionEntry, error)
	Purchase(ctx context.Context, userID int64, amount int64) (*domain.Wallet, *domain.TransactionEntry, error)
	Spend(
		ctx context.Context,
		userID int64,
		amount int64,
		relatedID string,
	) (*domain.Wallet, *domain.TransactionEntry, error)
	Earn(
		ctx context.Context,
		userID int64,
		amount int64,
		relatedID string,
	) (*domain.Wallet, *domain.TransactionEntry, error)
	Redeem(ctx context.Context, userID int64, amount int64) (*domain.Wallet, *domain.TransactionEntry, error)
	Reconcile(ctx context.Context, userID int64) (*service.ReconciliationReport, error)
}

// EscrowServicer эскроу-операции кошелька. Хендлеры ходят в сервис напрямую, без
// событийного координатора: прямой вызывающий должен видеть отказ (повторное разрешение
// холда — конфликт, а не no-op). Интерфейс исключительно для моков.
type EscrowServicer interface {
	HoldEscrow(
		ctx context.Context,
		userID int64,
		amount int64,
		relatedID string,
	) (*domain.Wallet, *domain.TransactionEntry, error)
	ReleaseEscrow(ctx context.Context, relatedID string, payeeID int64) (*domain.TransactionEntry, error)
	RefundEscrow(ctx context.Context, relatedID string) (*domain.TransactionEntry, error)
}
