package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EscrowHandler хуки переходов бронирования для внешнего воркфлоу. Сами бронирования
// живут в другой системе; сюда приходят только их события. Хендлеры вызывают эскроу-операции
// кошелька напрямую, поэтому нарушения последовательности видны вызывающей стороне:
// повторное разрешение холда отдается как 409, отсутствующий холд как 404.
type EscrowHandler struct {
	ledger EscrowServicer
}

func NewEscrowHandler(ledger EscrowServicer) *EscrowHandler {
	return &EscrowHandler{ledger: ledger}
}

type HoldParams struct {
	BookingID string `binding:"required,max_bytes=64" json:"booking_id"`
	Amount    int64  `binding:"required,gt=0"         json:"amount"`
}

// Hold POST RouteGroup + EscrowHoldRoute. Вызывается при подтверждении бронирования:
// если холд не прошел, подтверждение должно быть отклонено. Плательщик — текущий юзер.
func (h *EscrowHandler) Hold(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params HoldParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, _, err := h.ledger.HoldEscrow(reqCtx, currentUserID, params.Amount, params.BookingID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

type ReleaseParams struct {
	BookingID  string `binding:"required,max_bytes=64" json:"booking_id"`
	ProviderID int64  `binding:"required,gt=0"         json:"provider_id"`
}

// Release POST RouteGroup + EscrowReleaseRoute. Вызывается при завершении бронирования.
func (h *EscrowHandler) Release(c *gin.Context) {
	var params ReleaseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.ledger.ReleaseEscrow(reqCtx, params.BookingID, params.ProviderID); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type RefundParams struct {
	BookingID string `binding:"required,max_bytes=64" json:"booking_id"`
}

// Refund POST RouteGroup + EscrowRefundRoute. Вызывается при отмене бронирования.
func (h *EscrowHandler) Refund(c *gin.Context) {
	var params RefundParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.ledger.RefundEscrow(reqCtx, params.BookingID); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}
