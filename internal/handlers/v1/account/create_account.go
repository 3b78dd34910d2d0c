package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
)

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name string `json:"name" minLength:"1" required:"true" doc:"Account name"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	identity.Caller
	Body CreateAccountBody
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// actionProcessor runs a mutating action through the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account for the caller. Accounts start with a zero balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{
		UserID: userID,
		Name:   input.Body.Name,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromDomain(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", action.ID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: action.ID.String()},
	}, nil
}
