package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/repository/repoargs"
	"github.com/localsquare/tokenledger/internal/service"
	"github.com/localsquare/tokenledger/internal/service/mocks"
	"github.com/localsquare/tokenledger/pkg/uow"
	uowmocks "github.com/localsquare/tokenledger/pkg/uow/mocks"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockWalletRepo *mocks.MockWalletRepository
	mockEntryRepo  *mocks.MockTransactionRepository
	mockGateway    *mocks.MockFundsGateway
	service        *service.WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockEntryRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockGateway = mocks.NewMockFundsGateway(s.mockCtrl)

	// Настроить возврат репозиториев при инициализации сервиса
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockEntryRepo, nil).AnyTimes()

	// Внутри uow.Do репозитории достаются уже из транзакции.
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockEntryRepo, nil).AnyTimes()

	var err error
	s.service, err = service.NewWalletService(s.mockUOW, s.mockGateway, newTestLogger())
	s.Require().NoError(err)
}

func (s *WalletServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo настраивает мок UOW обертку: fn исполняется немедленно с mockTX.
func (s *WalletServiceTestSuite) expectDo(times int) {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).Times(times)
}

func (s *WalletServiceTestSuite) TestGetWallet() {
	expected := domain.Wallet{
		UserID:        123,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		Balance:       70,
		EscrowBalance: 30,
		TotalEarned:   50,
		TotalSpent:    10,
		Version:       4,
	}
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), expected.UserID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.Wallet, error) {
			w := expected
			return &w, nil
		})

	wallet, err := s.service.GetWallet(context.Background(), expected.UserID)
	s.Require().NoError(err)
	s.Equal(expected.Balance, wallet.Balance)
	s.Equal(expected.EscrowBalance, wallet.EscrowBalance)
}

func (s *WalletServiceTestSuite) TestGetWallet_NoRow() {
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), int64(77)).
		Return(nil, domain.ErrRecordNotFound)

	// Для юзера без операций отдается нулевой кошелек, строка не создается.
	wallet, err := s.service.GetWallet(context.Background(), 77)
	s.Require().NoError(err)
	s.Equal(int64(77), wallet.UserID)
	s.Zero(wallet.Balance)
	s.Zero(wallet.EscrowBalance)
	s.Zero(wallet.Version)
}

func (s *WalletServiceTestSuite) TestGetTransactions() {
	entries := []domain.TransactionEntry{
		{ID: 2, UserID: 123, Type: domain.TransactionTypeSpend, Amount: 10},
		{ID: 1, UserID: 123, Type: domain.TransactionTypePurchase, Amount: 100},
	}
	s.mockEntryRepo.EXPECT().GetByUserID(gomock.Any(), int64(123)).Return(entries, nil)

	got, err := s.service.GetTransactions(context.Background(), 123)
	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal(entries[0].ID, got[0].ID)
}

func (s *WalletServiceTestSuite) TestPurchase() {
	const userID int64 = 123
	const amount int64 = 100

	pending := domain.TransactionEntry{
		ID:     9,
		UserID: userID,
		Type:   domain.TransactionTypePurchase,
		Status: domain.TransactionStatusPending,
		Amount: amount,
	}

	// сначала создается pending запись
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionEntryCreate) (*domain.TransactionEntry, error) {
			s.Equal(userID, args.UserID)
			s.Equal(domain.TransactionTypePurchase, args.Type)
			s.Equal(domain.TransactionStatusPending, args.Status)
			s.Equal(amount, args.Amount)
			e := pending
			return &e, nil
		})

	// затем шлюз подтверждает списание денег
	s.mockGateway.EXPECT().Charge(gomock.Any(), service.ChargeArgs{
		UserID:  userID,
		Amount:  amount,
		EntryID: pending.ID,
	}).Return(nil)

	// первая операция юзера: строки кошелька еще нет
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockWalletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w domain.Wallet) (*domain.Wallet, error) {
			s.Equal(userID, w.UserID)
			s.Equal(amount, w.Balance)
			w.Version = 1
			return &w, nil
		})

	completed := pending
	completed.Status = domain.TransactionStatusCompleted
	s.mockEntryRepo.EXPECT().
		ResolvePending(gomock.Any(), pending.ID, domain.TransactionStatusCompleted).
		Return(&completed, nil)

	s.expectDo(1)

	wallet, entry, err := s.service.Purchase(context.Background(), userID, amount)
	s.Require().NoError(err)
	s.Equal(amount, wallet.Balance)
	s.Equal(domain.TransactionStatusCompleted, entry.Status)
}

func (s *WalletServiceTestSuite) TestPurchase_ChargeDeclined() {
	const userID int64 = 123

	pending := domain.TransactionEntry{
		ID:     9,
		UserID: userID,
		Type:   domain.TransactionTypePurchase,
		Status: domain.TransactionStatusPending,
		Amount: 100,
	}
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pending, nil)
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(errors.New("card declined"))

	// при отказе шлюза запись помечается failed, кошелек не трогается
	failed := pending
	failed.Status = domain.TransactionStatusFailed
	s.mockEntryRepo.EXPECT().
		ResolvePending(gomock.Any(), pending.ID, domain.TransactionStatusFailed).
		Return(&failed, nil)

	wallet, entry, err := s.service.Purchase(context.Background(), userID, 100)
	s.Require().Error(err)
	s.Nil(wallet)
	s.Nil(entry)
}

// Шлюз списал деньги, но зачисление не уложилось в отведенные попытки: pending запись
// остается в журнале (не переводится в failed) и факт громко логируется для ручного
// разбора — слепой повтор покупки списал бы деньги второй раз.
func (s *WalletServiceTestSuite) TestPurchase_ChargedButNotApplied() {
	const userID int64 = 123

	nullLogger, hook := logrustest.NewNullLogger()
	svc, svcErr := service.NewWalletService(s.mockUOW, s.mockGateway, nullLogger)
	s.Require().NoError(svcErr)

	pending := domain.TransactionEntry{
		ID:     9,
		UserID: userID,
		Type:   domain.TransactionTypePurchase,
		Status: domain.TransactionStatusPending,
		Amount: 100,
	}
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pending, nil)
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil)

	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.Wallet, error) {
			return &domain.Wallet{UserID: userID, Balance: 10, Version: 1}, nil
		}).Times(service.MaxConflictAttempts)
	s.mockWalletRepo.EXPECT().UpdateCAS(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrConflict).Times(service.MaxConflictAttempts)
	s.expectDo(service.MaxConflictAttempts)

	// ResolvePending не ожидается: запись не помечается failed, списание уже прошло.
	_, _, err := svc.Purchase(context.Background(), userID, 100)
	s.Require().ErrorIs(err, domain.ErrConflict)

	s.Require().NotNil(hook.LastEntry())
	s.Equal(logrus.ErrorLevel, hook.LastEntry().Level)
	s.Equal(pending.ID, hook.LastEntry().Data["entryID"])
}

func (s *WalletServiceTestSuite) TestSpend() {
	const userID int64 = 123

	stored := domain.Wallet{UserID: userID, Balance: 100, TotalSpent: 40, Version: 3}
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.Wallet, error) {
			w := stored
			return &w, nil
		}).Times(2)

	s.mockWalletRepo.EXPECT().UpdateCAS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w domain.Wallet) (*domain.Wallet, error) {
			s.Equal(int64(70), w.Balance)
			s.Equal(int64(70), w.TotalSpent)
			s.Equal(int64(3), w.Version)
			w.Version++
			return &w, nil
		}).Times(1)

	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionEntryCreate) (*domain.TransactionEntry, error) {
			s.Equal(domain.TransactionTypeSpend, args.Type)
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			s.Equal("evt-55", args.RelatedID)
			return &domain.TransactionEntry{ID: 10, UserID: userID, Amount: args.Amount}, nil
		}).Times(1)

	s.expectDo(2)

	cases := []struct {
		name    string
		amount  int64
		wantErr error
	}{
		{name: "ok", amount: 30, wantErr: nil},
		{name: "not enough balance", amount: 101, wantErr: domain.ErrInsufficientFunds},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			wallet, _, err := s.service.Spend(context.Background(), userID, t.amount, "evt-55")
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(int64(70), wallet.Balance)
		})
	}
}

// Две конкурентные траты с баланса 100: проигравший CAS перечитывает кошелек и видит,
// что токенов уже не хватает.
func (s *WalletServiceTestSuite) TestSpend_ConflictThenInsufficient() {
	const userID int64 = 123

	balances := []int64{100, 20}
	calls := 0
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.Wallet, error) {
			w := domain.Wallet{UserID: userID, Balance: balances[calls], Version: int64(calls) + 1}
			calls++
			return &w, nil
		}).Times(2)

	// первая попытка проигрывает гонку
	s.mockWalletRepo.EXPECT().UpdateCAS(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrConflict).Times(1)

	s.expectDo(2)

	_, _, err := s.service.Spend(context.Background(), userID, 80, "")
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *WalletServiceTestSuite) TestSpend_ConflictExhausted() {
	const userID int64 = 123

	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.Wallet, error) {
			return &domain.Wallet{UserID: userID, Balance: 100, Version: 1}, nil
		}).Times(service.MaxConflictAttempts)
	s.mockWalletRepo.EXPECT().UpdateCAS(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrConflict).Times(service.MaxConflictAttempts)

	s.expectDo(service.MaxConflictAttempts)

	_, _, err := s.service.Spend(context.Background(), userID, 10, "")
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *WalletServiceTestSuite) TestEarn() {
	const userID int64 = 123

	stored := domain.Wallet{UserID: userID, Balance: 10, TotalEarned: 5, Version: 2}
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.Wallet, error) {
			w := stored
			return &w, nil
		})
	s.mockWalletRepo.EXPECT().UpdateCAS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w domain.Wallet) (*domain.Wallet, error) {
			s.Equal(int64(35), w.Balance)
			s.Equal(int64(30), w.TotalEarned)
			w.Version++
			return &w, nil
		})
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionEntryCreate) (*domain.TransactionEntry, error) {
			s.Equal(domain.TransactionTypeEarn, args.Type)
			return &domain.TransactionEntry{ID: 11, UserID: userID, Amount: args.Amount}, nil
		})
	s.expectDo(1)

	wallet, _, err := s.service.Earn(context.Background(), userID, 25, "evt-7")
	s.Require().NoError(err)
	s.Equal(int64(35), wallet.Balance)
	s.Equal(int64(30), wallet.TotalEarned)
}

func (s *WalletServiceTestSuite) TestRedeem() {
	const userID int64 = 123

	stored := domain.Wallet{UserID: userID, Balance: 50, TotalSpent: 5, Version: 2}
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.Wallet, error) {
			w := stored
			return &w, nil
		})
	s.mockWalletRepo.EXPECT().UpdateCAS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w domain.Wallet) (*domain.Wallet, error) {
			// вывод уменьшает только баланс, totalSpent не растет
			s.Equal(int64(20), w.Balance)
			s.Equal(int64(5), w.TotalSpent)
			w.Version++
			return &w, nil
		})
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionEntryCreate) (*domain.TransactionEntry, error) {
			s.Equal(domain.TransactionTypeRedeem, args.Type)
			s.Empty(args.RelatedID)
			return &domain.TransactionEntry{ID: 12, UserID: userID, Amount: args.Amount}, nil
		})
	s.expectDo(1)

	wallet, _, err := s.service.Redeem(context.Background(), userID, 30)
	s.Require().NoError(err)
	s.Equal(int64(20), wallet.Balance)
}

func (s *WalletServiceTestSuite) TestInvalidAmount() {
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{"purchase zero", func() error {
			_, _, err := s.service.Purchase(ctx, 1, 0)
			return err
		}},
		{"spend negative", func() error {
			_, _, err := s.service.Spend(ctx, 1, -5, "")
			return err
		}},
		{"earn zero", func() error {
			_, _, err := s.service.Earn(ctx, 1, 0, "")
			return err
		}},
		{"redeem negative", func() error {
			_, _, err := s.service.Redeem(ctx, 1, -1)
			return err
		}},
		{"hold zero", func() error {
			_, _, err := s.service.HoldEscrow(ctx, 1, 0, "bk-1")
			return err
		}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.Require().ErrorIs(t.call(), domain.ErrInvalidAmount)
		})
	}
}
