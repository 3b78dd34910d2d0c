package user

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	Reader
}

var _ IUserTable = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{Reader: Reader{exec: exec}}
}

// Insert creates a new user and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	query := psql.Insert(
		im.Into("users", "id", "username", "password_hash"),
		im.Values(psql.Arg(id, create.Username, create.PasswordHash)),
	)
	if _, err := bob.Exec(ctx, w.exec, query); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
