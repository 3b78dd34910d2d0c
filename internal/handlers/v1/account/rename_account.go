package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
)

// RenameAccountBody is the request body for renaming an account. The
// balance is read-only through the API; only transactions change it.
type RenameAccountBody struct {
	Name string `json:"name" minLength:"1" required:"true" doc:"New account name"`
}

// RenameAccountInput is the Huma input for renaming an account.
type RenameAccountInput struct {
	identity.Caller
	ID   string `path:"id" doc:"Account UUID"`
	Body RenameAccountBody
}

// RenameAccountOutput is the Huma output for renaming an account.
type RenameAccountOutput struct {
	Status int
}

// RenameAccountHandler handles PATCH /v1/account/{id}.
type RenameAccountHandler struct {
	Operator actionProcessor
}

// NewRenameAccountHandler creates a new RenameAccountHandler.
func NewRenameAccountHandler(op actionProcessor) *RenameAccountHandler {
	return &RenameAccountHandler{Operator: op}
}

// Register registers the rename account endpoint with the Huma API.
func (h *RenameAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rename-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}",
		Summary:     "Rename account",
		Description: "Updates an account's display name.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *RenameAccountHandler) handle(ctx context.Context, input *RenameAccountInput) (*RenameAccountOutput, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	action := &actions.RenameAccount{
		UserID:    userID,
		AccountID: id,
		Name:      input.Body.Name,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromDomain(err, "failed to rename account")
	}

	return &RenameAccountOutput{Status: http.StatusNoContent}, nil
}
