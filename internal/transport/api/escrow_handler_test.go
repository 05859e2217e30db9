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
	"github.com/localsquare/tokenledger/internal/transport/api/mocks"
	"github.com/localsquare/tokenledger/internal/transport/api/testutils"
	"github.com/localsquare/tokenledger/internal/transport/api/tokens"
)

type EscrowHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLedger *mocks.MockEscrowServicer
	jwtSecret  []byte
}

func TestEscrowHandlerSuite(t *testing.T) {
	suite.Run(t, new(EscrowHandlerTestSuite))
}

func (s *EscrowHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())

	s.Require().NoError(RegisterValidators())

	s.mockLedger = mocks.NewMockEscrowServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:        logger.New(io.Discard),
		EscrowService: s.mockLedger,
		JWTSecretKey:  s.jwtSecret,
		RedeemRate:    decimal.RequireFromString("0.10"),
	})
}

func (s *EscrowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *EscrowHandlerTestSuite) userToken(userID int64) string {
	token, err := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *EscrowHandlerTestSuite) makeEscrowRequest(route, payload, jwtToken string) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + route,
		Body:   bytes.NewReader([]byte(payload)),
	}
	var reqOpts []func(*testutils.RequestOptions)
	if jwtToken != "" {
		reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", jwtToken)))
	}
	reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))
	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	return res
}

func (s *EscrowHandlerTestSuite) TestHold() {
	var residentID int64 = 1

	wallet := domain.Wallet{UserID: residentID, Balance: 20, EscrowBalance: 80, Version: 5}
	entry := domain.TransactionEntry{ID: 7, UserID: residentID, Amount: 80}

	// житель из JWT становится плательщиком холда
	s.mockLedger.EXPECT().
		HoldEscrow(gomock.Any(), residentID, int64(80), "bk-1").
		Return(&wallet, &entry, nil).Times(1)
	s.mockLedger.EXPECT().
		HoldEscrow(gomock.Any(), residentID, int64(500), "bk-poor").
		Return(nil, nil, domain.ErrInsufficientFunds).Times(1)
	s.mockLedger.EXPECT().
		HoldEscrow(gomock.Any(), residentID, int64(80), "bk-dup").
		Return(nil, nil, domain.ErrDuplicateHold).Times(1)

	token := s.userToken(residentID)

	cases := []struct {
		name       string
		payload    string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    `{"booking_id": "bk-1", "amount": 80}`,
			jwtToken:   token,
			wantStatus: http.StatusOK,
		}, {
			name:       "not enough tokens",
			payload:    `{"booking_id": "bk-poor", "amount": 500}`,
			jwtToken:   token,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "duplicate hold",
			payload:    `{"booking_id": "bk-dup", "amount": 80}`,
			jwtToken:   token,
			wantStatus: http.StatusConflict,
		}, {
			name:       "missing booking id",
			payload:    `{"amount": 80}`,
			jwtToken:   token,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			payload:    `{"booking_id": "bk-1", "amount": 80}`,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeEscrowRequest(EscrowHoldRoute, t.payload, t.jwtToken)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body WalletResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(wallet.Balance, body.Balance)
				s.Equal(wallet.EscrowBalance, body.EscrowBalance)
			}
		})
	}
}

func (s *EscrowHandlerTestSuite) TestRelease() {
	var callerID int64 = 1
	var providerID int64 = 456

	entry := domain.TransactionEntry{ID: 8, UserID: providerID, Amount: 80}

	s.mockLedger.EXPECT().
		ReleaseEscrow(gomock.Any(), "bk-1", providerID).
		Return(&entry, nil).Times(1)
	s.mockLedger.EXPECT().
		ReleaseEscrow(gomock.Any(), "bk-miss", providerID).
		Return(nil, domain.ErrHoldNotFound).Times(1)
	s.mockLedger.EXPECT().
		ReleaseEscrow(gomock.Any(), "bk-done", providerID).
		Return(nil, domain.ErrAlreadyResolved).Times(1)

	token := s.userToken(callerID)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    fmt.Sprintf(`{"booking_id": "bk-1", "provider_id": %d}`, providerID),
			wantStatus: http.StatusOK,
		}, {
			name:       "hold not found",
			payload:    fmt.Sprintf(`{"booking_id": "bk-miss", "provider_id": %d}`, providerID),
			wantStatus: http.StatusNotFound,
		}, {
			name:       "already resolved",
			payload:    fmt.Sprintf(`{"booking_id": "bk-done", "provider_id": %d}`, providerID),
			wantStatus: http.StatusConflict,
		}, {
			name:       "missing provider",
			payload:    `{"booking_id": "bk-1"}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeEscrowRequest(EscrowReleaseRoute, t.payload, token)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *EscrowHandlerTestSuite) TestRefund() {
	var callerID int64 = 1

	entry := domain.TransactionEntry{ID: 9, UserID: callerID, Amount: 80}

	s.mockLedger.EXPECT().
		RefundEscrow(gomock.Any(), "bk-1").
		Return(&entry, nil).Times(1)
	s.mockLedger.EXPECT().
		RefundEscrow(gomock.Any(), "bk-miss").
		Return(nil, domain.ErrHoldNotFound).Times(1)
	s.mockLedger.EXPECT().
		RefundEscrow(gomock.Any(), "bk-done").
		Return(nil, domain.ErrAlreadyResolved).Times(1)

	token := s.userToken(callerID)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: `{"booking_id": "bk-1"}`, wantStatus: http.StatusOK},
		{name: "hold not found", payload: `{"booking_id": "bk-miss"}`, wantStatus: http.StatusNotFound},
		{name: "already resolved", payload: `{"booking_id": "bk-done"}`, wantStatus: http.StatusConflict},
		{name: "blank payload", payload: `{}`, wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeEscrowRequest(EscrowRefundRoute, t.payload, token)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
