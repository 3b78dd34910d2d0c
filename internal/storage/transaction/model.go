package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type is the direction of a transaction's effect on its account balance.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// SignedAmount returns amount with the sign given by t: positive for
// income, negative for expense.
func (t Type) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t == TypeExpense {
		return amount.Neg()
	}
	return amount
}

// Transaction represents a transaction record. Rows are append-only:
// there is no update or delete path, corrections happen through
// compensating transactions.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  null.Val[uuid.UUID]
	Amount      decimal.Decimal
	Type        Type
	Description null.Val[string]
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
// CreatedAt is set by the caller so paired rows (transfers) share one
// operation timestamp.
type TransactionCreate struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  null.Val[uuid.UUID]
	Amount      decimal.Decimal
	Type        Type
	Description null.Val[string]
	CreatedAt   time.Time
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          uuid.UUID
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionReader defines read access to the transactions table.
type ITransactionReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	ITransactionReader
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
}

type transactionRow struct {
	ID          uuid.UUID           `db:"id"`
	UserID      uuid.UUID           `db:"user_id"`
	AccountID   uuid.UUID           `db:"account_id"`
	CategoryID  null.Val[uuid.UUID] `db:"category_id"`
	Amount      decimal.Decimal     `db:"amount"`
	Type        string              `db:"type"`
	Description null.Val[string]    `db:"description"`
	CreatedAt   time.Time           `db:"created_at"`
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:          row.ID,
		UserID:      row.UserID,
		AccountID:   row.AccountID,
		CategoryID:  row.CategoryID,
		Amount:      row.Amount,
		Type:        Type(row.Type),
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
