package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record. Balance is the running sum of
// all signed transaction amounts applied to the account.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID uuid.UUID
	Name   string
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// IAccountReader defines read access to the accounts table.
type IAccountReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IAccountTable interface {
	IAccountReader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	ApplyBalanceDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*Account, error)
}

type accountRow struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func rowToAccount(row accountRow) *Account {
	return &Account{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
