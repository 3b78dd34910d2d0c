package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	storagecategory "github.com/carson-networks/wallet-server/internal/storage/category"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	identity.Caller
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"All of the caller's categories"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*storagecategory.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns all of the caller's categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(categories)),
	}
	for i, cat := range categories {
		resp.Categories[i] = fromStorage(cat)
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
