package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/wallet-server/internal/storage/account"
	"github.com/carson-networks/wallet-server/internal/storage/category"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
	"github.com/carson-networks/wallet-server/internal/storage/user"
)

// Tx is the transaction handle a Writer runs on. bob.Tx satisfies it.
type Tx interface {
	bob.Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer is the unit of work for mutations: every operation performed
// through it runs in one database transaction and either fully commits
// or fully rolls back.
type Writer struct {
	tx           Tx
	Users        user.IUserTable
	Accounts     account.IAccountTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
}

func NewWriter(tx Tx) Writer {
	return Writer{
		tx:           tx,
		Users:        user.NewWriter(tx),
		Accounts:     account.NewWriter(tx),
		Categories:   category.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
