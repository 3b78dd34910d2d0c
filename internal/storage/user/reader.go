package user

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

var columns = []any{"id", "username", "password_hash", "created_at"}

type Reader struct {
	exec bob.Executor
}

var _ IUserReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a user by primary key. Returns nil when no row matches.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[userRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToUser(row), nil
}

// FindByUsername retrieves a user by unique username. Returns nil when no row matches.
func (r *Reader) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("users"),
		sm.Where(psql.Quote("username").EQ(psql.Arg(username))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[userRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToUser(row), nil
}
