package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	Reader
}

var _ ICategoryTable = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{Reader: Reader{exec: exec}}
}

// Insert creates a new category and returns its generated ID. A
// duplicate (user_id, name) pair fails on the unique constraint.
func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	query := psql.Insert(
		im.Into("categories", "id", "user_id", "name", "is_income"),
		im.Values(psql.Arg(id, create.UserID, create.Name, create.IsIncome)),
	)
	if _, err := bob.Exec(ctx, w.exec, query); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete removes a category. Dependent transactions keep their rows;
// the category reference is nulled by the FK's ON DELETE SET NULL.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.exec, query)
	return err
}
