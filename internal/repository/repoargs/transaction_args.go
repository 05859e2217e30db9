package repoargs

import "github.com/localsquare/tokenledger/internal/domain"

type TransactionEntryCreate struct {
	UserID      int64
	Type        domain.TransactionType
	Status      domain.TransactionStatusType
	Amount      int64
	RelatedID   string
	Description string
}
