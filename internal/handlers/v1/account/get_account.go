package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	storageaccount "github.com/carson-networks/wallet-server/internal/storage/account"
)

// GetAccountInput is the Huma input for fetching an account.
type GetAccountInput struct {
	identity.Caller
	ID string `path:"id" doc:"Account UUID"`
}

// GetAccountOutput is the Huma output for fetching an account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching a single account.
type accountGetter interface {
	GetAccount(ctx context.Context, userID, id uuid.UUID) (*storageaccount.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get account",
		Description: "Returns a single account owned by the caller.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	acc, err := h.AccountService.GetAccount(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDomain(err, "failed to get account")
	}

	return &GetAccountOutput{Body: fromStorage(acc)}, nil
}
