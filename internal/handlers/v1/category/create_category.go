package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name     string `json:"name" minLength:"1" maxLength:"100" required:"true" doc:"Category name, unique per user"`
	IsIncome bool   `json:"isIncome" doc:"Whether the category classifies income, defaults to false"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	identity.Caller
	Body CreateCategoryBody
}

// CreateCategoryResponse is the response body for creating a category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Created category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create category",
		Description: "Creates a new transaction category for the caller.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateCategory{
		UserID:   userID,
		Name:     input.Body.Name,
		IsIncome: input.Body.IsIncome,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromDomain(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponse{ID: action.ID.String()},
	}, nil
}
