package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/logger"
	"github.com/localsquare/tokenledger/internal/service"
	"github.com/localsquare/tokenledger/internal/transport/api/mocks"
	"github.com/localsquare/tokenledger/internal/transport/api/testutils"
	"github.com/localsquare/tokenledger/internal/transport/api/tokens"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockWalletService *mocks.MockWalletServicer
	jwtSecret         []byte
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())

	s.Require().NoError(RegisterValidators())

	s.mockWalletService = mocks.NewMockWalletServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:        logger.New(io.Discard),
		WalletService: s.mockWalletService,
		JWTSecretKey:  s.jwtSecret,
		RedeemRate:    decimal.RequireFromString("0.10"),
	})
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WalletHandlerTestSuite) userToken(userID int64) string {
	token, err := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *WalletHandlerTestSuite) TestIndex() {
	var userID int64 = 1

	wallet := domain.Wallet{
		UserID:        userID,
		Balance:       70,
		EscrowBalance: 30,
		TotalEarned:   50,
		TotalSpent:    10,
		Version:       4,
	}
	s.mockWalletService.EXPECT().GetWallet(gomock.Any(), userID).Return(&wallet, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", jwtToken: s.userToken(userID), wantStatus: http.StatusOK},
		{name: "not authorized", jwtToken: "", wantStatus: http.StatusUnauthorized},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + WalletRoute,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantStatus != http.StatusOK {
				return
			}
			var body WalletResponse
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.Equal(wallet.Balance, body.Balance)
			s.Equal(wallet.EscrowBalance, body.EscrowBalance)
		})
	}
}

func (s *WalletHandlerTestSuite) TestTransactions() {
	var userID int64 = 1

	entries := []domain.TransactionEntry{
		{
			ID:        2,
			CreatedAt: time.Now(),
			UserID:    userID,
			Type:      domain.TransactionTypeSpend,
			Status:    domain.TransactionStatusCompleted,
			Amount:    30,
			RelatedID: "evt-9",
		},
		{
			ID:        1,
			CreatedAt: time.Now().Add(-time.Hour),
			UserID:    userID,
			Type:      domain.TransactionTypePurchase,
			Status:    domain.TransactionStatusCompleted,
			Amount:    100,
		},
	}
	s.mockWalletService.EXPECT().GetTransactions(gomock.Any(), userID).Return(entries, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + TransactionsRoute,
	}
	res, err := testutils.MakeRequest(args,
		testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(userID))))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)
	var body []TransactionResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 2)
	s.Equal(int64(2), body[0].ID)
	s.Equal("evt-9", body[0].RelatedID)
	s.Empty(body[1].RelatedID)
}

func (s *WalletHandlerTestSuite) TestPurchase() {
	var userID int64 = 1

	wallet := domain.Wallet{UserID: userID, Balance: 100, Version: 1}
	entry := domain.TransactionEntry{
		ID:     1,
		UserID: userID,
		Type:   domain.TransactionTypePurchase,
		Status: domain.TransactionStatusCompleted,
		Amount: 100,
	}
	s.mockWalletService.EXPECT().
		Purchase(gomock.Any(), userID, int64(100)).
		Return(&wallet, &entry, nil).Times(1)
	// невалидные суммы до сервиса не доходят
	s.mockWalletService.EXPECT().
		Purchase(gomock.Any(), userID, gomock.Any()).Times(0)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: `{"amount": 100}`, wantStatus: http.StatusOK},
		{name: "zero amount", payload: `{"amount": 0}`, wantStatus: http.StatusBadRequest},
		{name: "negative amount", payload: `{"amount": -5}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", payload: `{"amount": `, wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PurchaseRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(userID))),
				testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WalletHandlerTestSuite) TestSpend() {
	var userID int64 = 1

	wallet := domain.Wallet{UserID: userID, Balance: 70, TotalSpent: 30, Version: 2}
	entry := domain.TransactionEntry{ID: 2, UserID: userID, Type: domain.TransactionTypeSpend, Amount: 30}

	s.mockWalletService.EXPECT().
		Spend(gomock.Any(), userID, int64(30), "evt-9").
		Return(&wallet, &entry, nil).Times(1)
	s.mockWalletService.EXPECT().
		Spend(gomock.Any(), userID, int64(1000), "").
		Return(nil, nil, domain.ErrInsufficientFunds).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: `{"amount": 30, "related_id": "evt-9"}`, wantStatus: http.StatusOK},
		{name: "not enough tokens", payload: `{"amount": 1000}`, wantStatus: http.StatusPaymentRequired},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + SpendRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(userID))),
				testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WalletHandlerTestSuite) TestRedeem() {
	var userID int64 = 1

	wallet := domain.Wallet{UserID: userID, Balance: 50, Version: 3}
	entry := domain.TransactionEntry{
		ID:     3,
		UserID: userID,
		Type:   domain.TransactionTypeRedeem,
		Status: domain.TransactionStatusCompleted,
		Amount: 50,
	}
	s.mockWalletService.EXPECT().
		Redeem(gomock.Any(), userID, int64(50)).
		Return(&wallet, &entry, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + RedeemRoute,
		Body:   bytes.NewReader([]byte(`{"amount": 50}`)),
	}
	res, err := testutils.MakeRequest(args,
		testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(userID))),
		testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)
	var body RedeemResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	// 50 токенов по курсу 0.10
	s.Equal("5.00", body.EstimatedPayout)
	s.Equal(wallet.Balance, body.Wallet.Balance)
}

func (s *WalletHandlerTestSuite) TestReconcile() {
	var userID int64 = 1

	report := service.ReconciliationReport{
		Stored:    domain.Wallet{UserID: userID, Balance: 70},
		Projected: domain.Wallet{UserID: userID, Balance: 70},
		InSync:    true,
	}
	s.mockWalletService.EXPECT().Reconcile(gomock.Any(), userID).Return(&report, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + ReconcileRoute,
	}
	res, err := testutils.MakeRequest(args,
		testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(userID))))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)
	var body ReconcileResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.True(body.InSync)
}
