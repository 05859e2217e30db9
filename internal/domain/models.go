package domain

import "time"

// Wallet материализованная проекция журнала транзакций юзера. Источником истины является
// журнал (TransactionEntry); поля баланса обязаны сходиться с репреем завершенных записей
// (см. Replay).
type Wallet struct {
	UserID        int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Balance       int64
	EscrowBalance int64
	TotalEarned   int64
	TotalSpent    int64
	// Version версия строки для оптимистичной блокировки. 0 означает что кошелек еще не
	// сохранялся в БД.
	Version int64
}

type TransactionEntry struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Type        TransactionType
	Status      TransactionStatusType
	Amount      int64
	RelatedID   string
	Description string
}
