package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/category"
)

// CreateCategory creates a new category for the caller. Names are
// unique per owner; the constraint violation is surfaced as an invalid
// argument rather than a storage failure.
type CreateCategory struct {
	UserID   uuid.UUID
	Name     string
	IsIncome bool

	// ID is set on success.
	ID uuid.UUID
}

var _ IAction = (*CreateCategory)(nil)

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.Name == "" {
		return faults.InvalidArgument("category_name", "category name must not be empty")
	}

	owner, err := writer.Users.FindByID(ctx, c.UserID)
	if err != nil {
		return err
	}
	if owner == nil {
		return faults.Forbidden("user", "unknown initiating user")
	}

	id, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		UserID:   c.UserID,
		Name:     c.Name,
		IsIncome: c.IsIncome,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return faults.InvalidArgument("category_name", "a category with this name already exists")
		}
		return err
	}

	c.ID = id
	return nil
}
