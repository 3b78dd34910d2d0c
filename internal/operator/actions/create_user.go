package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/user"
)

// CreateUser registers a new user identity. Only the bcrypt hash of the
// password is stored; sessions and tokens are the auth layer's problem.
type CreateUser struct {
	Username string
	Password string

	// ID is set on success.
	ID uuid.UUID
}

var _ IAction = (*CreateUser)(nil)

func (c *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.Username == "" {
		return faults.InvalidArgument("username", "username must not be empty")
	}
	if len(c.Password) < 8 {
		return faults.InvalidArgument("password", "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := writer.Users.Insert(ctx, &user.UserCreate{
		Username:     c.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return faults.InvalidArgument("username", "username already taken")
		}
		return err
	}

	c.ID = id
	return nil
}
