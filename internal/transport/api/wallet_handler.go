package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/localsquare/tokenledger/internal/domain"
)

type WalletHandler struct {
	svs WalletServicer
	// redeemRate курс токен -> валюта. Используется исключительно для отображения
	// ожидаемой выплаты, журнал хранит только токены.
	redeemRate decimal.Decimal
}

func NewWalletHandler(svs WalletServicer, redeemRate decimal.Decimal) *WalletHandler {
	return &WalletHandler{
		svs:        svs,
		redeemRate: redeemRate,
	}
}

type WalletResponse struct {
	Balance       int64 `json:"balance"`
	EscrowBalance int64 `json:"escrow_balance"`
	TotalEarned   int64 `json:"total_earned"`
	TotalSpent    int64 `json:"total_spent"`
}

func newWalletResponse(w *domain.Wallet) *WalletResponse {
	return &WalletResponse{
		Balance:       w.Balance,
		EscrowBalance: w.EscrowBalance,
		TotalEarned:   w.TotalEarned,
		TotalSpent:    w.TotalSpent,
	}
}

// Index GET RouteGroup + WalletRoute.
func (h *WalletHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := h.svs.GetWallet(reqCtx, currentUserID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

type TransactionResponseItem struct {
	ID          int64                        `json:"id"`
	Type        domain.TransactionType       `json:"type"`
	Status      domain.TransactionStatusType `json:"status"`
	Amount      int64                        `json:"amount"`
	RelatedID   string                       `json:"related_id,omitempty"`
	Description string                       `json:"description,omitempty"`
	CreatedAt   string                       `json:"created_at"`
}

// Transactions GET RouteGroup + TransactionsRoute. Журнал от новых к старым.
func (h *WalletHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.svs.GetTransactions(reqCtx, currentUserID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]TransactionResponseItem, len(entries))
	for i, entry := range entries {
		response[i] = TransactionResponseItem{
			ID:          entry.ID,
			Type:        entry.Type,
			Status:      entry.Status,
			Amount:      entry.Amount,
			RelatedID:   entry.RelatedID,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}

type AmountParams struct {
	Amount int64 `binding:"required,gt=0" json:"amount"`
}

// Purchase POST RouteGroup + PurchaseRoute.
func (h *WalletHandler) Purchase(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, _, err := h.svs.Purchase(reqCtx, currentUserID, params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

type RedeemResponse struct {
	Wallet *WalletResponse `json:"wallet"`
	// EstimatedPayout ожидаемая выплата в валюте по текущему курсу. Справочное поле,
	// фактическую выплату считает внешний сеттлмент.
	EstimatedPayout string `json:"estimated_payout"`
}

// Redeem POST RouteGroup + RedeemRoute.
func (h *WalletHandler) Redeem(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, entry, err := h.svs.Redeem(reqCtx, currentUserID, params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	payout := h.redeemRate.Mul(decimal.NewFromInt(entry.Amount))
	c.JSON(http.StatusOK, &RedeemResponse{
		Wallet:          newWalletResponse(wallet),
		EstimatedPayout: payout.StringFixed(2),
	})
}

type MovementParams struct {
	Amount    int64  `binding:"required,gt=0"          json:"amount"`
	RelatedID string `binding:"omitempty,max_bytes=64" json:"related_id"`
}

// Spend POST RouteGroup + SpendRoute.
func (h *WalletHandler) Spend(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params MovementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, _, err := h.svs.Spend(reqCtx, currentUserID, params.Amount, params.RelatedID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

// Earn POST RouteGroup + EarnRoute.
func (h *WalletHandler) Earn(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params MovementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, _, err := h.svs.Earn(reqCtx, currentUserID, params.Amount, params.RelatedID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

type ReconcileResponse struct {
	Stored    *WalletResponse `json:"stored"`
	Projected *WalletResponse `json:"projected"`
	InSync    bool            `json:"in_sync"`
}

// Reconcile GET RouteGroup + ReconcileRoute. Сверка строки кошелька с репреем журнала.
func (h *WalletHandler) Reconcile(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.svs.Reconcile(reqCtx, currentUserID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ReconcileResponse{
		Stored:    newWalletResponse(&report.Stored),
		Projected: newWalletResponse(&report.Projected),
		InSync:    report.InSync,
	})
}
