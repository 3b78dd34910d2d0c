package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	Reader
}

var _ IAccountTable = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{Reader: Reader{exec: exec}}
}

// FindByIDForUpdate retrieves an account by primary key with a row-level
// lock held for the remainder of the surrounding transaction. Callers
// must use this before any check-then-mutate sequence on the balance.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return w.findByID(ctx, id, true)
}

// Insert creates a new account with a zero balance and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	query := psql.Insert(
		im.Into("accounts", "id", "user_id", "name"),
		im.Values(psql.Arg(id, create.UserID, create.Name)),
	)
	if _, err := bob.Exec(ctx, w.exec, query); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Rename updates an account's display name.
func (w *Writer) Rename(ctx context.Context, id uuid.UUID, name string) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("name").To(psql.Arg(name)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.exec, query)
	return err
}

// ApplyBalanceDelta adds a signed delta to the account balance and
// returns the updated account. It performs no validation itself;
// callers pre-validate sufficiency of funds while holding the row lock.
func (w *Writer) ApplyBalanceDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*Account, error) {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").To(psql.Raw("balance + ?", delta)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)
	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}
	return rowToAccount(row), nil
}
