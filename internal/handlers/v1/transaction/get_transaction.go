package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/identity"
	storagetx "github.com/carson-networks/wallet-server/internal/storage/transaction"
)

// GetTransactionInput is the Huma input for fetching a transaction.
type GetTransactionInput struct {
	identity.Caller
	ID string `path:"id" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for fetching a transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for fetching a single transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*storagetx.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get transaction",
		Description: "Returns a single transaction owned by the caller.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	userID, err := input.Caller.Resolve()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	tx, err := h.TransactionService.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDomain(err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: fromStorage(tx)}, nil
}
