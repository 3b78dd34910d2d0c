package category

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	storagecategory "github.com/carson-networks/wallet-server/internal/storage/category"
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

type fakeCategoryLister struct {
	categories []*storagecategory.Category
}

func (f *fakeCategoryLister) ListCategories(context.Context, uuid.UUID) ([]*storagecategory.Category, error) {
	return f.categories, nil
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	op := &fakeProcessor{onProcess: func(a actions.IAction) {
		a.(*actions.CreateCategory).ID = categoryID
	}}

	_, api := humatest.New(t)
	NewCreateCategoryHandler(op).Register(api)

	resp := api.Post("/v1/category", userHeader(userID), CreateCategoryBody{
		Name:     "Groceries",
		IsIncome: false,
	})

	require.Equal(t, http.StatusCreated, resp.Code)

	action, ok := op.got.(*actions.CreateCategory)
	require.True(t, ok)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, "Groceries", action.Name)
	assert.False(t, action.IsIncome)

	var body CreateCategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, categoryID.String(), body.ID)
}

func TestHTTP_CreateCategory_DuplicateName(t *testing.T) {
	op := &fakeProcessor{err: faults.InvalidArgument("category_name", "a category with this name already exists")}

	_, api := humatest.New(t)
	NewCreateCategoryHandler(op).Register(api)

	resp := api.Post("/v1/category", userHeader(uuid.Must(uuid.NewV4())), CreateCategoryBody{
		Name: "Groceries",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListCategories(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	svc := &fakeCategoryLister{categories: []*storagecategory.Category{
		{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Groceries", CreatedAt: time.Now().UTC()},
		{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Salary", IsIncome: true, CreatedAt: time.Now().UTC()},
	}}

	_, api := humatest.New(t)
	NewListCategoriesHandler(svc).Register(api)

	resp := api.Get("/v1/categories", userHeader(userID))

	require.Equal(t, http.StatusOK, resp.Code)

	var body ListCategoriesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Categories, 2)
	assert.Equal(t, "Groceries", body.Categories[0].Name)
	assert.True(t, body.Categories[1].IsIncome)
}

func TestHTTP_DeleteCategory_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	op := &fakeProcessor{}

	_, api := humatest.New(t)
	NewDeleteCategoryHandler(op).Register(api)

	resp := api.Delete("/v1/category/"+categoryID.String(), userHeader(userID))

	require.Equal(t, http.StatusNoContent, resp.Code)

	action, ok := op.got.(*actions.DeleteCategory)
	require.True(t, ok)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, categoryID, action.CategoryID)
}

func TestHTTP_DeleteCategory_NotFound(t *testing.T) {
	op := &fakeProcessor{err: faults.NotFound("category", "category not found")}

	_, api := humatest.New(t)
	NewDeleteCategoryHandler(op).Register(api)

	resp := api.Delete("/v1/category/"+uuid.Must(uuid.NewV4()).String(),
		userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteCategory_Forbidden(t *testing.T) {
	op := &fakeProcessor{err: faults.Forbidden("category", "category does not belong to the caller")}

	_, api := humatest.New(t)
	NewDeleteCategoryHandler(op).Register(api)

	resp := api.Delete("/v1/category/"+uuid.Must(uuid.NewV4()).String(),
		userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusForbidden, resp.Code)
}
