package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/faults"
	storagetx "github.com/carson-networks/wallet-server/internal/storage/transaction"
)

type fakeTransactionGetter struct {
	tx  *storagetx.Transaction
	err error
}

func (f *fakeTransactionGetter) GetTransaction(context.Context, uuid.UUID, uuid.UUID) (*storagetx.Transaction, error) {
	return f.tx, f.err
}

func newGetTransactionAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	tx := &storagetx.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		AccountID: uuid.Must(uuid.NewV4()),
		Amount:    decimal.RequireFromString("12.50"),
		Type:      storagetx.TypeIncome,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	resp := newGetTransactionAPI(t, &fakeTransactionGetter{tx: tx}).
		Get("/v1/transaction/"+tx.ID.String(), userHeader(userID))

	require.Equal(t, http.StatusOK, resp.Code)

	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, tx.ID.String(), body.ID)
	assert.Equal(t, "income", body.Type)
	assert.Equal(t, "12.5", body.Amount)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	svc := &fakeTransactionGetter{err: faults.NotFound("transaction", "transaction not found")}

	resp := newGetTransactionAPI(t, svc).
		Get("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(), userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetTransaction_Forbidden(t *testing.T) {
	svc := &fakeTransactionGetter{err: faults.Forbidden("transaction", "transaction does not belong to the caller")}

	resp := newGetTransactionAPI(t, svc).
		Get("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(), userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHTTP_GetTransaction_InvalidID(t *testing.T) {
	resp := newGetTransactionAPI(t, &fakeTransactionGetter{}).
		Get("/v1/transaction/not-a-uuid", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
