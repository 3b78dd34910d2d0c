package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. (UserID, Name) is unique.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsIncome  bool
	CreatedAt time.Time
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID   uuid.UUID
	Name     string
	IsIncome bool
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	UserID uuid.UUID
}

// ICategoryReader defines read access to the categories table.
type ICategoryReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ICategoryTable interface {
	ICategoryReader
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	IsIncome  bool      `db:"is_income"`
	CreatedAt time.Time `db:"created_at"`
}

func rowToCategory(row categoryRow) *Category {
	return &Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		IsIncome:  row.IsIncome,
		CreatedAt: row.CreatedAt,
	}
}
