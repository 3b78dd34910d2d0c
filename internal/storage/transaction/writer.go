package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	Reader
}

var _ ITransactionTable = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{Reader: Reader{exec: exec}}
}

// Insert persists a new transaction row and returns it.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	query := psql.Insert(
		im.Into("transactions", "id", "user_id", "account_id", "category_id", "amount", "type", "description", "created_at"),
		im.Values(psql.Arg(
			id,
			create.UserID,
			create.AccountID,
			create.CategoryID,
			create.Amount,
			string(create.Type),
			create.Description,
			create.CreatedAt,
		)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}
