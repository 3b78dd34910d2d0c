package category

import (
	"context"

	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID       string `json:"id" doc:"Category UUID"`
	Name     string `json:"name" doc:"Category name, unique per user"`
	IsIncome bool   `json:"isIncome" doc:"Whether the category classifies income"`
}

func fromStorage(cat *category.Category) Category {
	return Category{
		ID:       cat.ID.String(),
		Name:     cat.Name,
		IsIncome: cat.IsIncome,
	}
}

// actionProcessor runs a mutating action through the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
