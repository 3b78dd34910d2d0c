package transaction

import (
	"time"

	"github.com/carson-networks/wallet-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	AccountID   string  `json:"accountID" doc:"Account UUID"`
	CategoryID  *string `json:"categoryID,omitempty" doc:"Category UUID, absent when untagged"`
	Amount      string  `json:"amount" doc:"Decimal amount, always positive; sign is given by type"`
	Type        string  `json:"type" doc:"income or expense"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromStorage(tx *transaction.Transaction) Transaction {
	resp := Transaction{
		ID:          tx.ID.String(),
		AccountID:   tx.AccountID.String(),
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Description: tx.Description.Ptr(),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if categoryID := tx.CategoryID.Ptr(); categoryID != nil {
		s := categoryID.String()
		resp.CategoryID = &s
	}
	return resp
}
