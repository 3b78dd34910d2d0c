// Package user exposes user registration. This is the only endpoint
// without a caller identity; everything else assumes the auth layer in
// front has already established one.
package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
)

// CreateUserBody is the request body for creating a user.
type CreateUserBody struct {
	Username string `json:"username" minLength:"1" maxLength:"150" required:"true" doc:"Unique username"`
	Password string `json:"password" minLength:"8" required:"true" doc:"Password, stored only as a bcrypt hash"`
}

// CreateUserInput is the Huma input for creating a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserResponse is the response body for creating a user.
type CreateUserResponse struct {
	ID       string `json:"id" doc:"Created user UUID"`
	Username string `json:"username" doc:"Username"`
}

// CreateUserOutput is the Huma output for creating a user.
type CreateUserOutput struct {
	Status int
	Body   CreateUserResponse
}

// actionProcessor runs a mutating action through the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateUserHandler handles POST /v1/user.
type CreateUserHandler struct {
	Operator actionProcessor
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(op actionProcessor) *CreateUserHandler {
	return &CreateUserHandler{Operator: op}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/v1/user",
		Summary:     "Create user",
		Description: "Registers a new user identity.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	action := &actions.CreateUser{
		Username: input.Body.Username,
		Password: input.Body.Password,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromDomain(err, "failed to create user")
	}

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body: CreateUserResponse{
			ID:       action.ID.String(),
			Username: input.Body.Username,
		},
	}, nil
}
