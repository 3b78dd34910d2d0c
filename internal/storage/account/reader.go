package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "name", "balance", "created_at", "updated_at"}

type Reader struct {
	exec bob.Executor
}

var _ IAccountReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves an account by primary key. Returns nil when no row matches.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return r.findByID(ctx, id, false)
}

func (r *Reader) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[accountRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToAccount(row), nil
}

// List returns up to Limit+1 accounts owned by filter.UserID so the
// caller can detect whether a next page exists.
func (r *Reader) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i, row := range rows {
		result[i] = rowToAccount(row)
	}
	return result, nil
}
