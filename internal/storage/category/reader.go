package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "name", "is_income", "created_at"}

type Reader struct {
	exec bob.Executor
}

var _ ICategoryReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a category by primary key. Returns nil when no row matches.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[categoryRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToCategory(row), nil
}

// List returns all categories owned by filter.UserID ordered by name.
func (r *Reader) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = rowToCategory(row)
	}
	return result, nil
}
