package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. PasswordHash is a bcrypt hash; the
// authentication layer in front of the API is the only consumer.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	PasswordHash string
}

// IUserReader defines read access to the users table.
type IUserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	IUserReader
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func rowToUser(row userRow) *User {
	return &User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
