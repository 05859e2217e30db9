package domain

// Apply применяет завершенную запись журнала к кошельку. Записи других юзеров и записи
// в статусе отличном от completed игнорируются.
func (w *Wallet) Apply(entry TransactionEntry) {
	if entry.UserID != w.UserID || entry.Status != TransactionStatusCompleted {
		return
	}
	switch entry.Type {
	case TransactionTypePurchase:
		w.Balance += entry.Amount
	case TransactionTypeEarn:
		w.Balance += entry.Amount
		w.TotalEarned += entry.Amount
	case TransactionTypeSpend:
		w.Balance -= entry.Amount
		w.TotalSpent += entry.Amount
	case TransactionTypeRedeem:
		w.Balance -= entry.Amount
	case TransactionTypeEscrowHold:
		w.Balance -= entry.Amount
		w.EscrowBalance += entry.Amount
	case TransactionTypeEscrowRefund:
		w.EscrowBalance -= entry.Amount
		w.Balance += entry.Amount
	case TransactionTypeEscrowRelease:
		// Запись release принадлежит плательщику и списывает его эскроу. Зачисление
		// получателю проводится отдельной записью earn с тем же RelatedID.
		w.EscrowBalance -= entry.Amount
	}
}

// Replay строит кошелек юзера с нуля по записям журнала. Записи должны быть переданы
// в порядке создания (от старых к новым). Журнал — источник истины: сохраненная строка
// кошелька обязана совпадать с результатом репрея.
func Replay(userID int64, entries []TransactionEntry) Wallet {
	w := Wallet{UserID: userID}
	for _, entry := range entries {
		w.Apply(entry)
	}
	return w
}
