package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// DeleteCategory removes a category owned by the caller. Transactions
// tagged with it keep their rows; the reference is nulled by the
// foreign key's ON DELETE SET NULL.
type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

var _ IAction = (*DeleteCategory)(nil)

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, d.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return faults.NotFound("category", "category not found")
	}
	if category.UserID != d.UserID {
		return faults.Forbidden("category", "category does not belong to the caller")
	}

	return writer.Categories.Delete(ctx, d.CategoryID)
}
