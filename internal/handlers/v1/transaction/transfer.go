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
)

// TransferBody is the request body for a peer-to-peer transfer. The
// snake_case field names are the wire contract existing clients use.
type TransferBody struct {
	RecipientUsername string `json:"recipient_username" required:"true" maxLength:"150" doc:"Username of the receiving user"`
	RecipientAccount  string `json:"recipient_account" required:"true" doc:"UUID of the receiving account"`
	SenderAccount     string `json:"sender_account" required:"true" doc:"UUID of the sending account, must belong to the caller"`
	TransactionAmount string `json:"transaction_amount" required:"true" doc:"Positive decimal amount, max 10 digits, 2 decimal places"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	identity.Caller
	Body TransferBody
}

// TransferResponse is the response body for a transfer.
type TransferResponse struct {
	Status string `json:"status" doc:"Transfer outcome"`
}

// TransferOutput is the Huma output for a transfer.
type TransferOutput struct {
	Body TransferResponse
}

// TransferHandler handles POST /v1/transaction/transfer.
type TransferHandler struct {
	Operator actionProcessor
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op actionProcessor) *TransferHandler {
	return &TransferHandler{Operator: op}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/transfer",
		Summary:     "Transfer between accounts",
		Description: "Atomically debits the sender account and credits the recipient account, recording one expense and one income transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseTransferInput(input *TransferInput) (*actions.Transfer, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}
	senderAccountID, err := uuid.FromString(input.Body.SenderAccount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sender_account", err)
	}
	recipientAccountID, err := uuid.FromString(input.Body.RecipientAccount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recipient_account", err)
	}
	amount, err := money.ParsePositiveAmount("transaction_amount", input.Body.TransactionAmount)
	if err != nil {
		return nil, apierror.FromDomain(err, "invalid transaction_amount")
	}

	return &actions.Transfer{
		InitiatorID:        userID,
		SenderAccountID:    senderAccountID,
		RecipientUsername:  input.Body.RecipientUsername,
		RecipientAccountID: recipientAccountID,
		Amount:             amount,
	}, nil
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseTransferInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromDomain(err, "failed to transfer")
	}

	return &TransferOutput{Body: TransferResponse{Status: "transfer successful"}}, nil
}
