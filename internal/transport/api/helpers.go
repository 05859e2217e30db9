package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/transport/api/middlewares"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения
// типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// abortWithDomainError транслирует ошибки доменной таксономии в http статусы. Транзиентный
// конфликт после исчерпания повторов отдается как 503 с просьбой повторить запрос; детали
// остаются приватными.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidRelatedID):
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.AbortWithStatus(http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrHoldNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateHold), errors.Is(err, domain.ErrAlreadyResolved):
		c.AbortWithStatus(http.StatusConflict)
	case errors.Is(err, domain.ErrConflict):
		_ = c.AbortWithError(http.StatusServiceUnavailable, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
