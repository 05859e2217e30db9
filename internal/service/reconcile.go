package service

import (
	"context"
	"fmt"

	"github.com/localsquare/tokenledger/internal/domain"
)

// ReconciliationReport результат сверки сохраненного кошелька с репреем журнала.
type ReconciliationReport struct {
	Stored    domain.Wallet
	Projected domain.Wallet
	InSync    bool
}

// Reconcile перестраивает кошелек юзера репреем завершенных записей журнала и сравнивает
// результат с сохраненной строкой. Журнал — источник истины, строка кошелька лишь
// материализованный кеш; расхождение означает баг и не чинится молча.
func (s *WalletService) Reconcile(ctx context.Context, userID int64) (*ReconciliationReport, error) {
	wallet, walletErr := s.GetWallet(ctx, userID)
	if walletErr != nil {
		return nil, fmt.Errorf("reconcile: %w", walletErr)
	}

	entries, entriesErr := s.GetTransactions(ctx, userID)
	if entriesErr != nil {
		return nil, fmt.Errorf("reconcile: %w", entriesErr)
	}

	// Журнал отдается от новых к старым, репрей требует хронологического порядка.
	chronological := make([]domain.TransactionEntry, len(entries))
	for i, entry := range entries {
		chronological[len(entries)-1-i] = entry
	}

	projected := domain.Replay(userID, chronological)

	return &ReconciliationReport{
		Stored:    *wallet,
		Projected: projected,
		InSync: wallet.Balance == projected.Balance &&
			wallet.EscrowBalance == projected.EscrowBalance &&
			wallet.TotalEarned == projected.TotalEarned &&
			wallet.TotalSpent == projected.TotalSpent,
	}, nil
}
