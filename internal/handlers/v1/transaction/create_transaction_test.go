package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	storagetx "github.com/carson-networks/wallet-server/internal/storage/transaction"
)

// fakeProcessor stands in for the operator. onProcess lets a test
// populate action result fields the way a real Perform would.
type fakeProcessor struct {
	got       actions.IAction
	err       error
	onProcess func(action actions.IAction)
}

func (f *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	f.got = action
	if f.err != nil {
		return f.err
	}
	if f.onProcess != nil {
		f.onProcess(action)
	}
	return nil
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

func newCreateTransactionAPI(t *testing.T, op *fakeProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	op := &fakeProcessor{onProcess: func(a actions.IAction) {
		action := a.(*actions.CreateTransaction)
		action.Created = &storagetx.Transaction{
			ID:        txID,
			UserID:    userID,
			AccountID: action.AccountID,
			Amount:    action.Amount,
			Type:      action.Type,
			CreatedAt: time.Now().UTC(),
		}
	}}

	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction", userHeader(userID), CreateTransactionBody{
		AccountID: accountID.String(),
		Amount:    "12.50",
		Type:      "expense",
	})

	require.Equal(t, http.StatusCreated, resp.Code)

	action, ok := op.got.(*actions.CreateTransaction)
	require.True(t, ok)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, accountID, action.AccountID)
	assert.Nil(t, action.CategoryID)
	assert.True(t, action.Amount.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, storagetx.TypeExpense, action.Type)

	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "12.5", body.Amount)
	assert.Equal(t, "expense", body.Type)
	assert.Nil(t, body.CategoryID)
}

func TestHTTP_CreateTransaction_WithCategoryAndDescription(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	op := &fakeProcessor{onProcess: func(a actions.IAction) {
		action := a.(*actions.CreateTransaction)
		action.Created = &storagetx.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			UserID:      userID,
			AccountID:   action.AccountID,
			CategoryID:  null.FromPtr(action.CategoryID),
			Amount:      action.Amount,
			Type:        action.Type,
			Description: null.FromPtr(action.Description),
			CreatedAt:   time.Now().UTC(),
		}
	}}

	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction", userHeader(userID), CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID:  categoryID.String(),
		Amount:      "3.00",
		Type:        "income",
		Description: "pocket money",
	})

	require.Equal(t, http.StatusCreated, resp.Code)

	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.CategoryID)
	assert.Equal(t, categoryID.String(), *body.CategoryID)
	require.NotNil(t, body.Description)
	assert.Equal(t, "pocket money", *body.Description)
}

func TestHTTP_CreateTransaction_MissingUserHeader(t *testing.T) {
	op := &fakeProcessor{}

	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction", CreateTransactionBody{
		AccountID: uuid.Must(uuid.NewV4()).String(),
		Amount:    "12.50",
		Type:      "expense",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Nil(t, op.got)
}

func TestHTTP_CreateTransaction_InvalidAccountID(t *testing.T) {
	op := &fakeProcessor{}

	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction",
		userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
			AccountID: "not-a-uuid",
			Amount:    "12.50",
			Type:      "expense",
		})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Nil(t, op.got)
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	op := &fakeProcessor{}
	api := newCreateTransactionAPI(t, op)

	for _, amount := range []string{"not-a-decimal", "0", "-4.00", "1.234", "100000000.00"} {
		resp := api.Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Amount:    amount,
			Type:      "expense",
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code, "amount %s", amount)
	}
	assert.Nil(t, op.got)
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	op := &fakeProcessor{}

	// The enum tag rejects unknown types during schema validation.
	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction",
		userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Amount:    "12.50",
			Type:      "refund",
		})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Nil(t, op.got)
}

func TestHTTP_CreateTransaction_InsufficientFunds(t *testing.T) {
	op := &fakeProcessor{err: faults.InsufficientFunds("transaction_amount", "insufficient funds")}

	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction",
		userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Amount:    "12.50",
			Type:      "expense",
		})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	op := &fakeProcessor{err: faults.NotFound("account", "account not found")}

	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction",
		userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Amount:    "12.50",
			Type:      "expense",
		})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_Conflict(t *testing.T) {
	op := &fakeProcessor{err: faults.ConflictRetryable("concurrent balance update, retry the operation")}

	resp := newCreateTransactionAPI(t, op).Post("/v1/transaction",
		userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Amount:    "12.50",
			Type:      "expense",
		})

	assert.Equal(t, http.StatusConflict, resp.Code)
}
