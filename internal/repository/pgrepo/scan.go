package pgrepo

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/localsquare/tokenledger/internal/domain"
)

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(
		&w.UserID, &w.CreatedAt, &w.UpdatedAt,
		&w.Balance, &w.EscrowBalance, &w.TotalEarned, &w.TotalSpent,
		&w.Version,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}

func scanEntry(row pgx.Row) (*domain.TransactionEntry, error) {
	var e domain.TransactionEntry
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt,
		&e.UserID, &e.Type, &e.Status, &e.Amount, &e.RelatedID, &e.Description,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &e, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound)
}
