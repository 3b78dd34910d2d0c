package service

import (
	"github.com/carson-networks/wallet-server/internal/storage"
)

// Service holds the read-side services. Mutations go through the
// operator instead.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Account:     NewAccountService(store),
		Category:    NewCategoryService(store),
	}
}
