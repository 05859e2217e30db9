package pgrepo

import (
	"context"
	"fmt"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/pkg/uow"
)

const walletColumns = `user_id, created_at, updated_at, balance, escrow_balance, total_earned, total_spent, version`

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

// Find возвращает кошелек юзера. Если кошелек еще не создавался, вернется ошибка
// domain.ErrRecordNotFound — ленивое создание лежит на сервисном слое.
func (r *WalletRepository) Find(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := r.conn.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM wallets WHERE user_id = $1`, walletColumns),
		userID,
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "finding wallet for user %d", userID)
	}
	return wallet, nil
}

// Create вставляет новую строку кошелька с версией 1. Конкурентное создание того же
// кошелька вернет domain.ErrDuplicateKey.
func (r *WalletRepository) Create(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	row := r.conn.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO wallets (user_id, balance, escrow_balance, total_earned, total_spent, version)
			VALUES ($1, $2, $3, $4, $5, 1)
			RETURNING %s`, walletColumns),
		wallet.UserID, wallet.Balance, wallet.EscrowBalance, wallet.TotalEarned, wallet.TotalSpent,
	)
	created, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "creating wallet for user %d", wallet.UserID)
	}
	return created, nil
}

// UpdateCAS обновляет кошелек по схеме compare-and-set: строка перезаписывается только
// если её версия в БД совпадает с wallet.Version. Если версия ушла вперед (конкурентная
// запись успела раньше), вернется domain.ErrConflict и вызывающая сторона обязана
// перечитать кошелек и повторить операцию.
func (r *WalletRepository) UpdateCAS(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	row := r.conn.QueryRow(ctx,
		fmt.Sprintf(`UPDATE wallets
			SET balance = $2, escrow_balance = $3, total_earned = $4, total_spent = $5,
				version = version + 1, updated_at = now()
			WHERE user_id = $1 AND version = $6
			RETURNING %s`, walletColumns),
		wallet.UserID, wallet.Balance, wallet.EscrowBalance, wallet.TotalEarned, wallet.TotalSpent,
		wallet.Version,
	)
	updated, scanErr := scanWallet(row)
	if scanErr != nil {
		converted := convertErr(scanErr, "updating wallet for user %d", wallet.UserID)
		// Отсутствие строки при CAS апдейте означает что версия устарела.
		if isNotFound(converted) {
			return nil, fmt.Errorf("[repository/updating wallet for user %d] %w", wallet.UserID, domain.ErrConflict)
		}
		return nil, converted
	}
	return updated, nil
}
