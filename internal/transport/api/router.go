package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/localsquare/tokenledger/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	WalletRoute       = "/wallet"
	TransactionsRoute = "/wallet/transactions"
	PurchaseRoute     = "/wallet/purchase"
	RedeemRoute       = "/wallet/redeem"
	SpendRoute        = "/wallet/spend"
	EarnRoute         = "/wallet/earn"
	ReconcileRoute    = "/wallet/reconcile"

	EscrowHoldRoute    = "/escrow/hold"
	EscrowReleaseRoute = "/escrow/release"
	EscrowRefundRoute  = "/escrow/refund"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	WalletService WalletServicer
	EscrowService EscrowServicer
	JWTSecretKey  []byte
	RedeemRate    decimal.Decimal
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	walletHandler := NewWalletHandler(args.WalletService, args.RedeemRate)
	escrowHandler := NewEscrowHandler(args.EscrowService)

	api := r.Group(RouteGroup)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// все роуты группы требуют авторизованного пользователя.
	api.GET(WalletRoute, walletHandler.Index)
	api.GET(TransactionsRoute, walletHandler.Transactions)
	api.GET(ReconcileRoute, walletHandler.Reconcile)
	api.POST(PurchaseRoute, walletHandler.Purchase)
	api.POST(RedeemRoute, walletHandler.Redeem)
	api.POST(SpendRoute, walletHandler.Spend)
	api.POST(EarnRoute, walletHandler.Earn)

	api.POST(EscrowHoldRoute, escrowHandler.Hold)
	api.POST(EscrowReleaseRoute, escrowHandler.Release)
	api.POST(EscrowRefundRoute, escrowHandler.Refund)
	return r
}
