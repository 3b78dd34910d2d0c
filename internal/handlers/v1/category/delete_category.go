package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	identity.Caller
	ID string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	Operator actionProcessor
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op actionProcessor) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category. Transactions tagged with it are kept and untagged.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	action := &actions.DeleteCategory{
		UserID:     userID,
		CategoryID: id,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromDomain(err, "failed to delete category")
	}

	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
