package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
)

// CreateTransaction records a single income or expense transaction
// against one account and applies the signed amount to its balance.
// Both writes share the unit of work, so a failure between them leaves
// neither committed.
type CreateTransaction struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID
	Amount      decimal.Decimal
	Type        transaction.Type
	Description *string

	// Created is set on success.
	Created *transaction.Transaction
}

var _ IAction = (*CreateTransaction)(nil)

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return faults.InvalidArgument("transaction_amount", "transaction amount must be a positive number")
	}
	if !t.Type.Valid() {
		return faults.InvalidArgument("transaction_type", "transaction type must be income or expense")
	}

	// The row lock serializes the check-then-mutate sequence on this
	// account against concurrent transactions and transfers.
	account, err := writer.Accounts.FindByIDForUpdate(ctx, t.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return faults.NotFound("account", "account not found")
	}
	if account.UserID != t.UserID {
		return faults.Forbidden("account", "account does not belong to the caller")
	}

	if t.CategoryID != nil {
		category, err := writer.Categories.FindByID(ctx, *t.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return faults.NotFound("transaction_category", "category not found")
		}
		if category.UserID != t.UserID {
			return faults.Forbidden("transaction_category", "category does not belong to the caller")
		}
	}

	if t.Type == transaction.TypeExpense && account.Balance.Sub(t.Amount).IsNegative() {
		return faults.InsufficientFunds("transaction_amount",
			"insufficient funds: this transaction would result in a negative balance")
	}

	created, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:      t.UserID,
		AccountID:   t.AccountID,
		CategoryID:  null.FromPtr(t.CategoryID),
		Amount:      t.Amount,
		Type:        t.Type,
		Description: null.FromPtr(t.Description),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if _, err := writer.Accounts.ApplyBalanceDelta(ctx, t.AccountID, t.Type.SignedAmount(t.Amount)); err != nil {
		return err
	}

	t.Created = created
	return nil
}
