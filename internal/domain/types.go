package domain

// TransactionType тип движения токенов. Знак движения определяется типом, поле Amount
// всегда положительное.
type TransactionType string

const (
	TransactionTypePurchase      TransactionType = "purchase"
	TransactionTypeEarn          TransactionType = "earn"
	TransactionTypeSpend         TransactionType = "spend"
	TransactionTypeRedeem        TransactionType = "redeem"
	TransactionTypeEscrowHold    TransactionType = "escrow_hold"
	TransactionTypeEscrowRelease TransactionType = "escrow_release"
	TransactionTypeEscrowRefund  TransactionType = "escrow_refund"
)

type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "pending"
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusFailed    TransactionStatusType = "failed"
)
