package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/money"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	storagetx "github.com/carson-networks/wallet-server/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID   string `json:"accountID" required:"true" doc:"Account UUID"`
	CategoryID  string `json:"categoryID,omitempty" doc:"Optional category UUID"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount, max 10 digits, 2 decimal places"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Description string `json:"description,omitempty" doc:"Optional description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	identity.Caller
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// actionProcessor runs a mutating action through the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records an income or expense transaction and atomically applies it to the account balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != "" {
		id, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		categoryID = &id
	}

	amount, err := money.ParsePositiveAmount("amount", input.Body.Amount)
	if err != nil {
		return nil, apierror.FromDomain(err, "invalid amount")
	}

	transactionType := storagetx.Type(input.Body.Type)
	if !transactionType.Valid() {
		return nil, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}

	var description *string
	if input.Body.Description != "" {
		description = &input.Body.Description
	}

	return &actions.CreateTransaction{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        transactionType,
		Description: description,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromDomain(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", action.Created.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(action.Created),
	}, nil
}
