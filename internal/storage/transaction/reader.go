package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "account_id", "category_id", "amount", "type", "description", "created_at"}

type Reader struct {
	exec bob.Executor
}

var _ ITransactionReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a transaction by primary key. Returns nil when no row matches.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[transactionRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToTransaction(row), nil
}

// List returns up to Limit+1 transactions matching the filter, newest
// first, so the caller can detect whether a next page exists.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
	}

	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.AccountID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
	}
	if filter.CategoryID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.MaxCreationTime != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	if len(whereMods) == 1 {
		queryMods = append(queryMods, whereMods[0])
	} else {
		queryMods = append(queryMods, psql.WhereAnd(whereMods...))
	}

	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}
