package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/account"
)

// CreateAccount creates a new account for the caller with a zero
// balance. Money enters only through transactions.
type CreateAccount struct {
	UserID uuid.UUID
	Name   string

	// ID is set on success.
	ID uuid.UUID
}

var _ IAction = (*CreateAccount)(nil)

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.Name == "" {
		return faults.InvalidArgument("account_name", "account name must not be empty")
	}

	owner, err := writer.Users.FindByID(ctx, c.UserID)
	if err != nil {
		return err
	}
	if owner == nil {
		return faults.Forbidden("user", "unknown initiating user")
	}

	id, err := writer.Accounts.Insert(ctx, &account.AccountCreate{
		UserID: c.UserID,
		Name:   c.Name,
	})
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
