package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService handles transaction read paths.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction retrieves a transaction by ID, scoped to the calling user.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, faults.NotFound("transaction", "transaction not found")
	}
	if row.UserID != userID {
		return nil, faults.Forbidden("transaction", "transaction does not belong to the caller")
	}
	return row, nil
}

// ListTransactions returns a page of the user's transactions using
// cursor-based pagination. The cursor carries a creation-time watermark
// so rows created after the first page do not shift later pages.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) ([]*transaction.Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &transaction.TransactionFilter{
		UserID:          userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	return rows, nextCursor, nil
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
