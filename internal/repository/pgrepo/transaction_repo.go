package pgrepo

import (
	"context"
	"fmt"

	"github.com/localsquare/tokenledger/internal/domain"
	"github.com/localsquare/tokenledger/internal/repository/repoargs"
	"github.com/localsquare/tokenledger/pkg/uow"
)

// Журнал транзакций append-only: репозиторий умеет вставлять записи и переводить
// pending записи в терминальный статус. Завершенные записи никогда не изменяются.
const entryColumns = `id, created_at, updated_at, user_id, type, status, amount, COALESCE(related_id, ''), description`

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

func (r *TransactionRepository) Create(
	ctx context.Context,
	entry repoargs.TransactionEntryCreate,
) (*domain.TransactionEntry, error) {
	row := r.conn.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO transaction_entries (user_id, type, status, amount, related_id, description)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
			RETURNING %s`, entryColumns),
		entry.UserID, entry.Type, entry.Status, entry.Amount, entry.RelatedID, entry.Description,
	)
	created, err := scanEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating %s entry for user %d", entry.Type, entry.UserID)
	}
	return created, nil
}

// GetByUserID возвращает записи журнала юзера от новых к старым. Порядок стабильный:
// при равном created_at ничья разрешается по id (порядку вставки).
func (r *TransactionRepository) GetByUserID(
	ctx context.Context,
	userID int64,
) ([]domain.TransactionEntry, error) {
	rows, err := r.conn.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM transaction_entries
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC`, entryColumns),
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing entries for user %d", userID)
	}
	defer rows.Close()

	var entries []domain.TransactionEntry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing entries for user %d", userID)
		}
		entries = append(entries, *entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing entries for user %d", userID)
	}
	return entries, nil
}

// FindHold возвращает завершенную запись escrow_hold по идентификатору бронирования.
// Частичный уникальный индекс гарантирует не более одной такой записи.
func (r *TransactionRepository) FindHold(
	ctx context.Context,
	relatedID string,
) (*domain.TransactionEntry, error) {
	row := r.conn.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM transaction_entries
			WHERE related_id = $1 AND type = $2 AND status = $3`, entryColumns),
		relatedID, domain.TransactionTypeEscrowHold, domain.TransactionStatusCompleted,
	)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, convertErr(err, "finding hold %s", relatedID)
	}
	return entry, nil
}

// FindResolution возвращает разрешающую запись холда (escrow_release или escrow_refund)
// по идентификатору бронирования, либо domain.ErrRecordNotFound если холд еще открыт.
func (r *TransactionRepository) FindResolution(
	ctx context.Context,
	relatedID string,
) (*domain.TransactionEntry, error) {
	row := r.conn.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM transaction_entries
			WHERE related_id = $1 AND type IN ($2, $3)`, entryColumns),
		relatedID, domain.TransactionTypeEscrowRelease, domain.TransactionTypeEscrowRefund,
	)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, convertErr(err, "finding resolution for hold %s", relatedID)
	}
	return entry, nil
}

// ResolvePending переводит pending запись в терминальный статус. Разрешен только переход
// pending -> {completed, failed} и только один раз: если запись уже не pending, вернется
// domain.ErrRecordNotFound.
func (r *TransactionRepository) ResolvePending(
	ctx context.Context,
	id int64,
	status domain.TransactionStatusType,
) (*domain.TransactionEntry, error) {
	row := r.conn.QueryRow(ctx,
		fmt.Sprintf(`UPDATE transaction_entries
			SET status = $2, updated_at = now()
			WHERE id = $1 AND status = $3
			RETURNING %s`, entryColumns),
		id, status, domain.TransactionStatusPending,
	)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, convertErr(err, "resolving pending entry %d", id)
	}
	return entry, nil
}
