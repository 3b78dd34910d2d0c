package account

import (
	"time"

	"github.com/carson-networks/wallet-server/internal/storage/account"
)

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	Balance   string `json:"balance" doc:"Decimal balance"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromStorage(acc *account.Account) Account {
	return Account{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Balance:   acc.Balance.String(),
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: acc.UpdatedAt.Format(time.RFC3339),
	}
}
