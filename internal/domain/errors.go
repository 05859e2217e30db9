package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrInvalidAmount сумма операции не положительная. Ошибка вызывающей стороны,
	// повтор бессмыслен.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidRelatedID пустой или некорректный внешний идентификатор (id бронирования).
	ErrInvalidRelatedID = errors.New("invalid related id")
	// ErrInsufficientFunds на балансе недостаточно токенов.
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrDuplicateHold по данному бронированию уже существует открытый холд.
	ErrDuplicateHold = errors.New("escrow hold already exists")
	// ErrHoldNotFound по данному бронированию холд не найден.
	ErrHoldNotFound = errors.New("escrow hold not found")
	// ErrAlreadyResolved холд уже разрешен (release или refund). Повторное разрешение
	// координатор трактует как no-op.
	ErrAlreadyResolved = errors.New("escrow hold already resolved")
	// ErrConflict конкурентная запись изменила кошелек. Транзиентная ошибка, сервис
	// повторяет операцию ограниченное число раз прежде чем отдать её наружу.
	ErrConflict = errors.New("concurrent wallet update conflict")
)
