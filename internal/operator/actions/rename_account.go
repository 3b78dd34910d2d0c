package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// RenameAccount updates an account's display name. The balance is never
// writable through this path.
type RenameAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Name      string
}

var _ IAction = (*RenameAccount)(nil)

func (r *RenameAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if r.Name == "" {
		return faults.InvalidArgument("account_name", "account name must not be empty")
	}

	account, err := writer.Accounts.FindByIDForUpdate(ctx, r.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return faults.NotFound("account", "account not found")
	}
	if account.UserID != r.UserID {
		return faults.Forbidden("account", "account does not belong to the caller")
	}

	return writer.Accounts.Rename(ctx, r.AccountID, r.Name)
}
