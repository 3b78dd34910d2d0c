package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/category"
)

// CategoryService handles category read paths.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns all of the user's categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	return s.storage.Categories.List(ctx, &category.CategoryFilter{UserID: userID})
}
