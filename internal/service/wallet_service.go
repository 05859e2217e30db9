package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/repository/repoargs"
	"github.com/localsquare/tokenledger/pkg/uow"
)

const (
	// maxConflictAttempts число попыток операции при конкурентном изменении кошелька.
	// После исчерпания попыток наружу отдается domain.ErrConflict.
	maxConflictAttempts = 3
	retryBackoffBase    = 25 * time.Millisecond
)

// WalletService единственный компонент, которому разрешено изменять кошельки. Каждая
// операция читает кошелек, проверяет инварианты и атомарно (через uow) коммитит новое
// состояние кошелька вместе с записью журнала. Конкурентные операции над одним кошельком
// разрешаются оптимистичной блокировкой: проигравшая сторона перечитывает кошелек и
// повторяет попытку.
type WalletService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	entryRepo  TransactionRepository
	gateway    FundsGateway
	logger     *logrus.Logger
}

func NewWalletService(u uow.UOW, gateway FundsGateway, l *logrus.Logger) (*WalletService, error) {
	walletRepo, walletRepoErr := uow.GetRepositoryAs[WalletRepository](
		u, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr
	}
	entryRepo, entryRepoErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if entryRepoErr != nil {
		return nil, entryRepoErr
	}
	return &WalletService{
		uow:        u,
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		gateway:    gateway,
		logger:     l,
	}, nil
}

// GetWallet возвращает кошелек юзера. Если юзер еще не совершал операций, вернется
// нулевой кошелек без каких-либо побочных эффектов — строка создается только при первой
// записи.
func (s *WalletService) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	return findOrZero(ctx, s.walletRepo, userID)
}

// GetTransactions возвращает записи журнала юзера от новых к старым.
func (s *WalletService) GetTransactions(ctx context.Context, userID int64) ([]domain.TransactionEntry, error) {
	entries, err := s.entryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}

// Purchase зачисляет купленные токены на баланс. Списание реальных денег выполняется
// через FundsGateway: сначала создается pending запись журнала, затем вызывается шлюз,
// и только после его подтверждения запись завершается и баланс применяется. При отказе
// шлюза запись помечается failed и кошелек не изменяется.
func (s *WalletService) Purchase(
	ctx context.Context,
	userID int64,
	amount int64,
) (*domain.Wallet, *domain.TransactionEntry, error) {
	if err := validateAmount(amount); err != nil {
		return nil, nil, err
	}

	pending, pendingErr := s.entryRepo.Create(ctx, repoargs.TransactionEntryCreate{
		UserID:      userID,
		Type:        domain.TransactionTypePurchase,
		Status:      domain.TransactionStatusPending,
		Amount:      amount,
		Description: "token purchase",
	})
	if pendingErr != nil {
		return nil, nil, fmt.Errorf("purchase: %w", pendingErr)
	}

	if chargeErr := s.gateway.Charge(ctx, ChargeArgs{
		UserID:  userID,
		Amount:  amount,
		EntryID: pending.ID,
	}); chargeErr != nil {
		if _, failErr := s.entryRepo.ResolvePending(ctx, pending.ID, domain.TransactionStatusFailed); failErr != nil {
			return nil, nil, errors.Join(fmt.Errorf("purchase: charge declined: %w", chargeErr), failErr)
		}
		return nil, nil, fmt.Errorf("purchase: charge declined: %w", chargeErr)
	}

	var wallet *domain.Wallet
	var entry *domain.TransactionEntry
	err := s.withConflictRetry(ctx, func(c context.Context) error {
		return s.uow.Do(c, func(txCtx context.Context, tx uow.TX) error {
			walletRepo, entryRepo, reposErr := txRepos(tx)
			if reposErr != nil {
				return reposErr
			}

			w, findErr := findOrZero(txCtx, walletRepo, userID)
			if findErr != nil {
				return findErr
			}
			w.Balance += amount

			saved, saveErr := saveWallet(txCtx, walletRepo, *w)
			if saveErr != nil {
				return saveErr
			}

			completed, completeErr := entryRepo.ResolvePending(
				txCtx, pending.ID, domain.TransactionStatusCompleted)
			if completeErr != nil {
				return completeErr //nolint:wrapcheck
			}

			wallet, entry = saved, completed
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Деньги уже списаны шлюзом, но зачисление не прошло. Pending запись
			// остается в журнале для ручного разбора; слепой повтор покупки списал бы
			// деньги второй раз.
			s.logger.WithFields(logrus.Fields{
				"userID":  userID,
				"entryID": pending.ID,
				"amount":  amount,
			}).Error("purchase charged but not applied, pending entry left in journal")
		}
		return nil, nil, fmt.Errorf("purchase: %w", err)
	}
	return wallet, entry, nil
}

// Spend списывает токены с баланса (оплата услуги, взнос в общественную инициативу).
// relatedID опционален и связывает запись журнала с внешней сущностью.
func (s *WalletService) Spend(
	ctx context.Context,
	userID int64,
	amount int64,
	relatedID string,
) (*domain.Wallet, *domain.TransactionEntry, error) {
	if err := validateAmount(amount); err != nil {
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

			w, findErr := findOrZero(txCtx, walletRepo, userID)
			if findErr != nil {
				return findErr
			}
			if w.Balance < amount {
				return domain.ErrInsufficientFunds
			}
			w.Balance -= amount
			w.TotalSpent += amount

			saved, saveErr := saveWallet(txCtx, walletRepo, *w)
			if saveErr != nil {
				return saveErr
			}

			created, createErr := entryRepo.Create(txCtx, repoargs.TransactionEntryCreate{
				UserID:      userID,
				Type:        domain.TransactionTypeSpend,
				Status:      domain.TransactionStatusCompleted,
				Amount:      amount,
				RelatedID:   relatedID,
				Description: "token spend",
			})
			if createErr != nil {
				return createErr //nolint:wrapcheck
			}

			wallet, entry = saved, created
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("spend: %w", err)
	}
	return wallet, entry, nil
}

// Earn зачисляет заработанные токены (выплата за оказанную услугу вне эскроу).
func (s *WalletService) Earn(
	ctx context.Context,
	userID int64,
	amount int64,
	relatedID string,
) (*domain.Wallet, *domain.TransactionEntry, error) {
	if err := validateAmount(amount); err != nil {
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

			w, findErr := findOrZero(txCtx, walletRepo, userID)
			if findErr != nil {
				return findErr
			}
			w.Balance += amount
			w.TotalEarned += amount

			saved, saveErr := saveWallet(txCtx, walletRepo, *w)
			if saveErr != nil {
				return saveErr
			}

			created, createErr := entryRepo.Create(txCtx, repoargs.TransactionEntryCreate{
				UserID:      userID,
				Type:        domain.TransactionTypeEarn,
				Status:      domain.TransactionStatusCompleted,
				Amount:      amount,
				RelatedID:   relatedID,
				Description: "token earn",
			})
			if createErr != nil {
				return createErr //nolint:wrapcheck
			}

			wallet, entry = saved, created
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("earn: %w", err)
	}
	return wallet, entry, nil
}

// Redeem списывает токены под вывод в реальные деньги. Курс конвертации — внешняя
// забота, журнал фиксирует только количество токенов.
func (s *WalletService) Redeem(
	ctx context.Context,
	userID int64,
	amount int64,
) (*domain.Wallet, *domain.TransactionEntry, error) {
	if err := validateAmount(amount); err != nil {
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

			w, findErr := findOrZero(txCtx, walletRepo, userID)
			if findErr != nil {
				return findErr
			}
			if w.Balance < amount {
				return domain.ErrInsufficientFunds
			}
			w.Balance -= amount

			saved, saveErr := saveWallet(txCtx, walletRepo, *w)
			if saveErr != nil {
				return saveErr
			}

			created, createErr := entryRepo.Create(txCtx, repoargs.TransactionEntryCreate{
				UserID:      userID,
				Type:        domain.TransactionTypeRedeem,
				Status:      domain.TransactionStatusCompleted,
				Amount:      amount,
				Description: "token redemption",
			})
			if createErr != nil {
				return createErr //nolint:wrapcheck
			}

			wallet, entry = saved, created
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("redeem: %w", err)
	}
	return wallet, entry, nil
}

// withConflictRetry повторяет fn пока та возвращает domain.ErrConflict, но не более
// maxConflictAttempts раз. Между попытками выдерживается пауза с джиттером, чтобы
// конкурирующие операции не бились лбами повторно.
func (s *WalletService) withConflictRetry(ctx context.Context, fn func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxConflictAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !errors.Is(err, domain.ErrConflict) {
			return err
		}
		if attempt == maxConflictAttempts {
			break
		}
		backoff := time.Duration(jitter(float64(retryBackoffBase)*float64(attempt), 0.15, 0.15))
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("%d attempts exhausted: %w", maxConflictAttempts, err)
}

func txRepos(tx uow.TX) (WalletRepository, TransactionRepository, error) {
	walletRepo, walletErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if walletErr != nil {
		return nil, nil, walletErr //nolint:wrapcheck
	}
	entryRepo, entryErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if entryErr != nil {
		return nil, nil, entryErr //nolint:wrapcheck
	}
	return walletRepo, entryRepo, nil
}

// findOrZero возвращает кошелек юзера либо нулевой кошелек (Version 0), если строки
// еще нет.
func findOrZero(ctx context.Context, repo WalletRepository, userID int64) (*domain.Wallet, error) {
	wallet, err := repo.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.Wallet{UserID: userID}, nil
		}
		return nil, err //nolint:wrapcheck
	}
	return wallet, nil
}

// saveWallet сохраняет снапшот кошелька. Version 0 означает первую запись — строка
// создается; иначе выполняется CAS апдейт. Гонка на создании (duplicate key) считается
// конфликтом и уходит на повтор.
func saveWallet(ctx context.Context, repo WalletRepository, wallet domain.Wallet) (*domain.Wallet, error) {
	if wallet.Version == 0 {
		created, err := repo.Create(ctx, wallet)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return nil, fmt.Errorf("creating wallet for user %d: %w", wallet.UserID, domain.ErrConflict)
			}
			return nil, err //nolint:wrapcheck
		}
		return created, nil
	}
	updated, err := repo.UpdateCAS(ctx, wallet)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return updated, nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return nil
}
