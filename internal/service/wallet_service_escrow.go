package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/repository/repoargs"
	"github.com/localsquare/tokenledger/pkg/uow"
)

// Эскроу-операции кошелька. Холд представлен парой связанных записей журнала: escrow_hold
// и его разрешение (escrow_release либо escrow_refund) с одним и тем же RelatedID.
// Частичные уникальные индексы в БД гарантируют не более одного холда и не более одного
// разрешения на бронирование даже при гонках.

// HoldEscrow резервирует amount токенов плательщика под бронирование relatedID:
// доступный баланс уменьшается, эскроу-баланс растет. Возвращает domain.ErrDuplicateHold
// если по бронированию уже есть открытый холд и domain.ErrInsufficientFunds при нехватке
// токенов.
func (s *WalletService) HoldEscrow(
	ctx context.Context,
	userID int64,
	amount int64,
	relatedID string,
) (*domain.Wallet, *domain.TransactionEntry, error) {
	if err := validateAmount(amount); err != nil {
		return nil, nil, err
	}
	if err := validateRelatedID(relatedID); err != nil {
		return nil, nil, err
	}

	var wallet *domain.Wallet
	var entry *domain.TransactionEntry
	err := s.withConflictRetry(ctx, func(c context.Context) error {
		return s.uow.Do(c, func(txCtx context.Context, tx uow.TX) error {
			walletRepo, entryRepo, reposErr := txRepos(tx)
			if reposErr != nil {
				return reposErr
			}

			if holdErr := ensureNoHold(txCtx, entryRepo, relatedID); holdErr != nil {
				return holdErr
			}

			w, findErr := findOrZero(txCtx, walletRepo, userID)
			if findErr != nil {
				return findErr
			}
			if w.Balance < amount {
				return domain.ErrInsufficientFunds
			}
			w.Balance -= amount
			w.EscrowBalance += amount

			saved, saveErr := saveWallet(txCtx, walletRepo, *w)
			if saveErr != nil {
				return saveErr
			}

			created, createErr := entryRepo.Create(txCtx, repoargs.TransactionEntryCreate{
				UserID:      userID,
				Type:        domain.TransactionTypeEscrowHold,
				Status:      domain.TransactionStatusCompleted,
				Amount:      amount,
				RelatedID:   relatedID,
				Description: "escrow hold",
			})
			if createErr != nil {
				// Гонка двух холдов по одному бронированию: уникальный индекс пропустил
				// только одного.
				if errors.Is(createErr, domain.ErrDuplicateKey) {
					return fmt.Errorf("hold %s: %w", relatedID, domain.ErrDuplicateHold)
				}
				return createErr //nolint:wrapcheck
			}

			wallet, entry = saved, created
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("holding escrow: %w", err)
	}
	return wallet, entry, nil
}

// ReleaseEscrow разрешает холд в пользу исполнителя: эскроу плательщика списывается,
// получателю зачисляются токены и растет TotalEarned. В журнал атомарно попадают две
// связанные записи: escrow_release у плательщика и earn у получателя. Повторное
// разрешение возвращает domain.ErrAlreadyResolved.
func (s *WalletService) ReleaseEscrow(
	ctx context.Context,
	relatedID string,
	payeeID int64,
) (*domain.TransactionEntry, error) {
	if err := validateRelatedID(relatedID); err != nil {
		return nil, err
	}

	var entry *domain.TransactionEntry
	err := s.withConflictRetry(ctx, func(c context.Context) error {
		return s.uow.Do(c, func(txCtx context.Context, tx uow.TX) error {
			walletRepo, entryRepo, reposErr := txRepos(tx)
			if reposErr != nil {
				return reposErr
			}

			hold, holdErr := findOpenHold(txCtx, entryRepo, relatedID)
			if holdErr != nil {
				return holdErr
			}

			payer, payerErr := findOrZero(txCtx, walletRepo, hold.UserID)
			if payerErr != nil {
				return payerErr
			}
			if payer.EscrowBalance < hold.Amount {
				// Эскроу-баланс разошелся с журналом. Не чиним молча.
				return fmt.Errorf("escrow balance of user %d below hold %s: %w",
					hold.UserID, relatedID, domain.ErrUnknown)
			}

			if payeeID == hold.UserID {
				// Плательщик и исполнитель совпали: одна строка кошелька, обе правки в ней.
				payer.EscrowBalance -= hold.Amount
				payer.Balance += hold.Amount
				payer.TotalEarned += hold.Amount
				if _, saveErr := saveWallet(txCtx, walletRepo, *payer); saveErr != nil {
					return saveErr
				}
			} else {
				payer.EscrowBalance -= hold.Amount
				if _, saveErr := saveWallet(txCtx, walletRepo, *payer); saveErr != nil {
					return saveErr
				}

				payee, payeeErr := findOrZero(txCtx, walletRepo, payeeID)
				if payeeErr != nil {
					return payeeErr
				}
				payee.Balance += hold.Amount
				payee.TotalEarned += hold.Amount
				if _, saveErr := saveWallet(txCtx, walletRepo, *payee); saveErr != nil {
					return saveErr
				}
			}

			created, createErr := entryRepo.Create(txCtx, repoargs.TransactionEntryCreate{
				UserID:      hold.UserID,
				Type:        domain.TransactionTypeEscrowRelease,
				Status:      domain.TransactionStatusCompleted,
				Amount:      hold.Amount,
				RelatedID:   relatedID,
				Description: "escrow release",
			})
			if createErr != nil {
				if errors.Is(createErr, domain.ErrDuplicateKey) {
					return fmt.Errorf("hold %s: %w", relatedID, domain.ErrAlreadyResolved)
				}
				return createErr //nolint:wrapcheck
			}

			if _, earnErr := entryRepo.Create(txCtx, repoargs.TransactionEntryCreate{
				UserID:      payeeID,
				Type:        domain.TransactionTypeEarn,
				Status:      domain.TransactionStatusCompleted,
				Amount:      hold.Amount,
				RelatedID:   relatedID,
				Description: "escrow release payout",
			}); earnErr != nil {
				return earnErr //nolint:wrapcheck
			}

			entry = created
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("releasing escrow: %w", err)
	}
	return entry, nil
}

// RefundEscrow возвращает захолдированные токены плательщику (отмена бронирования).
// Повторное разрешение возвращает domain.ErrAlreadyResolved.
func (s *WalletService) RefundEscrow(
	ctx context.Context,
	relatedID string,
) (*domain.TransactionEntry, error) {
	if err := validateRelatedID(relatedID); err != nil {
		return nil, err
	}

	var entry *domain.TransactionEntry
	err := s.withConflictRetry(ctx, func(c context.Context) error {
		return s.uow.Do(c, func(txCtx context.Context, tx uow.TX) error {
			walletRepo, entryRepo, reposErr := txRepos(tx)
			if reposErr != nil {
				return reposErr
			}

			hold, holdErr := findOpenHold(txCtx, entryRepo, relatedID)
			if holdErr != nil {
				return holdErr
			}

			payer, payerErr := findOrZero(txCtx, walletRepo, hold.UserID)
			if payerErr != nil {
				return payerErr
			}
			if payer.EscrowBalance < hold.Amount {
				return fmt.Errorf("escrow balance of user %d below hold %s: %w",
					hold.UserID, relatedID, domain.ErrUnknown)
			}
			payer.EscrowBalance -= hold.Amount
			payer.Balance += hold.Amount

			if _, saveErr := saveWallet(txCtx, walletRepo, *payer); saveErr != nil {
				return saveErr
			}

			created, createErr := entryRepo.Create(txCtx, repoargs.TransactionEntryCreate{
				UserID:      hold.UserID,
				Type:        domain.TransactionTypeEscrowRefund,
				Status:      domain.TransactionStatusCompleted,
				Amount:      hold.Amount,
				RelatedID:   relatedID,
				Description: "escrow refund",
			})
			if createErr != nil {
				if errors.Is(createErr, domain.ErrDuplicateKey) {
					return fmt.Errorf("hold %s: %w", relatedID, domain.ErrAlreadyResolved)
				}
				return createErr //nolint:wrapcheck
			}

			entry = created
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("refunding escrow: %w", err)
	}
	return entry, nil
}

// findOpenHold возвращает открытый холд по бронированию: domain.ErrHoldNotFound если
// холда нет вовсе, domain.ErrAlreadyResolved если он уже разрешен.
func findOpenHold(
	ctx context.Context,
	repo TransactionRepository,
	relatedID string,
) (*domain.TransactionEntry, error) {
	hold, holdErr := repo.FindHold(ctx, relatedID)
	if holdErr != nil {
		if errors.Is(holdErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("hold %s: %w", relatedID, domain.ErrHoldNotFound)
		}
		return nil, holdErr //nolint:wrapcheck
	}

	_, resErr := repo.FindResolution(ctx, relatedID)
	if resErr == nil {
		return nil, fmt.Errorf("hold %s: %w", relatedID, domain.ErrAlreadyResolved)
	}
	if !errors.Is(resErr, domain.ErrRecordNotFound) {
		return nil, resErr //nolint:wrapcheck
	}
	return hold, nil
}

// ensureNoHold проверяет что по бронированию еще нет холда (в любом состоянии).
func ensureNoHold(ctx context.Context, repo TransactionRepository, relatedID string) error {
	_, err := repo.FindHold(ctx, relatedID)
	if err == nil {
		return fmt.Errorf("hold %s: %w", relatedID, domain.ErrDuplicateHold)
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return err //nolint:wrapcheck
	}
	return nil
}

func validateRelatedID(relatedID string) error {
	if relatedID == "" {
		return fmt.Errorf("%w: blank", domain.ErrInvalidRelatedID)
	}
	return nil
}
