package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/account"
)

const defaultAccountLimit = 20

// AccountService handles account read paths.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves an account by ID, scoped to the calling user.
func (s *AccountService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*account.Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, faults.NotFound("account", "account not found")
	}
	if row.UserID != userID {
		return nil, faults.Forbidden("account", "account does not belong to the caller")
	}
	return row, nil
}

// ListAccounts returns a page of the user's accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID, cursor *AccountCursor) ([]*account.Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &account.AccountFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}

	accounts, err := s.storage.Accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(accounts) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if len(accounts) > limit {
		accounts = accounts[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return accounts, nextCursor, nil
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}
