package actions

import (
	"bytes"
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/account"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
)

// Transfer moves an amount between two accounts as a single unit: one
// expense transaction and debit on the sender, one income transaction
// and credit on the recipient. Either both sides commit or neither does.
type Transfer struct {
	InitiatorID        uuid.UUID
	SenderAccountID    uuid.UUID
	RecipientUsername  string
	RecipientAccountID uuid.UUID
	Amount             decimal.Decimal
}

var _ IAction = (*Transfer)(nil)

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return faults.InvalidArgument("transaction_amount", "transfer amount must be a positive number")
	}
	if t.SenderAccountID == t.RecipientAccountID {
		return faults.InvalidArgument("recipient_account", "cannot transfer to the sending account")
	}

	initiator, err := writer.Users.FindByID(ctx, t.InitiatorID)
	if err != nil {
		return err
	}
	if initiator == nil {
		return faults.Forbidden("user", "unknown initiating user")
	}

	recipient, err := writer.Users.FindByUsername(ctx, t.RecipientUsername)
	if err != nil {
		return err
	}
	if recipient == nil {
		return faults.NotFound("recipient_username", "recipient user does not exist")
	}

	sender, recipientAccount, err := t.lockAccounts(ctx, writer)
	if err != nil {
		return err
	}
	if sender == nil {
		return faults.NotFound("sender_account", "sender account not found")
	}
	if sender.UserID != t.InitiatorID {
		return faults.Forbidden("sender_account", "sender account does not belong to the caller")
	}
	if recipientAccount == nil || recipientAccount.UserID != recipient.ID {
		return faults.InvalidArgument("recipient_account",
			"the recipient's account does not belong to the recipient user")
	}

	if sender.Balance.LessThan(t.Amount) {
		return faults.InsufficientFunds("transaction_amount", "insufficient funds")
	}

	// One operation timestamp for both legs.
	now := time.Now().UTC()

	if _, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:      initiator.ID,
		AccountID:   sender.ID,
		Amount:      t.Amount,
		Type:        transaction.TypeExpense,
		Description: null.From("Transfer to " + recipient.Username),
		CreatedAt:   now,
	}); err != nil {
		return err
	}
	if _, err := writer.Accounts.ApplyBalanceDelta(ctx, sender.ID, t.Amount.Neg()); err != nil {
		return err
	}

	if _, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:      recipient.ID,
		AccountID:   recipientAccount.ID,
		Amount:      t.Amount,
		Type:        transaction.TypeIncome,
		Description: null.From("Transfer from " + initiator.Username),
		CreatedAt:   now,
	}); err != nil {
		return err
	}
	if _, err := writer.Accounts.ApplyBalanceDelta(ctx, recipientAccount.ID, t.Amount); err != nil {
		return err
	}

	return nil
}

// lockAccounts acquires both account rows FOR UPDATE in ascending ID
// order so two transfers crossing in opposite directions cannot
// deadlock. Returns nil for either side that does not exist.
func (t *Transfer) lockAccounts(ctx context.Context, writer *storage.Writer) (sender, recipient *account.Account, err error) {
	first, second := t.SenderAccountID, t.RecipientAccountID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}

	firstAccount, err := writer.Accounts.FindByIDForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondAccount, err := writer.Accounts.FindByIDForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	if first == t.SenderAccountID {
		return firstAccount, secondAccount, nil
	}
	return secondAccount, firstAccount, nil
}
