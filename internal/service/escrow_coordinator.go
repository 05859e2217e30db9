package service

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/localsquare/tokenledger/internal/domain"
)

// BookingEvent событие жизненного цикла бронирования из внешнего воркфлоу. Координатор
// не хранит состояния бронирований — только проецирует их переходы на операции кошелька.
type BookingEvent struct {
	BookingID   string
	ResidentID  int64
	ProviderID  int64
	TotalTokens int64
}

// EscrowCoordinator мост между стейт-машиной бронирований и кошельком. Подтверждение
// бронирования резервирует токены, завершение выплачивает их исполнителю, отмена
// возвращает плательщику. Повторная доставка события завершения/отмены безопасна:
// domain.ErrAlreadyResolved трактуется как no-op.
type EscrowCoordinator struct {
	ledger EscrowLedger
}

func NewEscrowCoordinator(ledger EscrowLedger) *EscrowCoordinator {
	return &EscrowCoordinator{ledger: ledger}
}

// BookingConfirmed резервирует токены жителя под бронирование. Ошибка холда означает,
// что подтверждение бронирования должно быть отклонено — она отдается вызывающей стороне
// как есть (ErrInsufficientFunds, ErrDuplicateHold и т.д.).
func (c *EscrowCoordinator) BookingConfirmed(ctx context.Context, ev BookingEvent) error {
	_, _, err := c.ledger.HoldEscrow(ctx, ev.ResidentID, ev.TotalTokens, ev.BookingID)
	return pkgerrors.Wrapf(err, "confirming booking %s", ev.BookingID)
}

// BookingCompleted выплачивает захолдированные токены исполнителю.
func (c *EscrowCoordinator) BookingCompleted(ctx context.Context, ev BookingEvent) error {
	_, err := c.ledger.ReleaseEscrow(ctx, ev.BookingID, ev.ProviderID)
	if pkgerrors.Is(err, domain.ErrAlreadyResolved) {
		// Повторная доставка события — холд уже разрешен.
		return nil
	}
	return pkgerrors.Wrapf(err, "completing booking %s", ev.BookingID)
}

// BookingCancelled возвращает захолдированные токены жителю.
func (c *EscrowCoordinator) BookingCancelled(ctx context.Context, ev BookingEvent) error {
	_, err := c.ledger.RefundEscrow(ctx, ev.BookingID)
	if pkgerrors.Is(err, domain.ErrAlreadyResolved) {
		return nil
	}
	return pkgerrors.Wrapf(err, "cancelling booking %s", ev.BookingID)
}
