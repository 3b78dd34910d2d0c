package actions

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/account"
	"github.com/carson-networks/wallet-server/internal/storage/category"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
	"github.com/carson-networks/wallet-server/internal/storage/user"
)

// In-memory implementations of the table interfaces. They behave like
// the Postgres tables within a single unit of work, which is all an
// action ever sees.

type memUsers struct {
	users map[uuid.UUID]*user.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[uuid.UUID]*user.User{}}
}

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Insert(_ context.Context, create *user.UserCreate) (uuid.UUID, error) {
	for _, u := range m.users {
		if u.Username == create.Username {
			return uuid.Nil, &pq.Error{Code: "23505"}
		}
	}
	id := uuid.Must(uuid.NewV4())
	m.users[id] = &user.User{
		ID:           id,
		Username:     create.Username,
		PasswordHash: create.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return id, nil
}

type memAccounts struct {
	accounts map[uuid.UUID]*account.Account

	// lockOrder records the sequence of FindByIDForUpdate calls.
	lockOrder []uuid.UUID
}

func newMemAccounts() *memAccounts {
	return &memAccounts{accounts: map[uuid.UUID]*account.Account{}}
}

func (m *memAccounts) FindByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *memAccounts) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	m.lockOrder = append(m.lockOrder, id)
	return m.FindByID(ctx, id)
}

func (m *memAccounts) List(_ context.Context, filter *account.AccountFilter) ([]*account.Account, error) {
	var out []*account.Account
	for _, a := range m.accounts {
		if a.UserID == filter.UserID {
			copied := *a
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return paginate(out, filter.Offset, filter.Limit), nil
}

func (m *memAccounts) Insert(_ context.Context, create *account.AccountCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	now := time.Now().UTC()
	m.accounts[id] = &account.Account{
		ID:        id,
		UserID:    create.UserID,
		Name:      create.Name,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (m *memAccounts) Rename(_ context.Context, id uuid.UUID, name string) error {
	if a, ok := m.accounts[id]; ok {
		a.Name = name
		a.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (m *memAccounts) ApplyBalanceDelta(_ context.Context, id uuid.UUID, delta decimal.Decimal) (*account.Account, error) {
	a := m.accounts[id]
	a.Balance = a.Balance.Add(delta)
	a.UpdatedAt = time.Now().UTC()
	copied := *a
	return &copied, nil
}

type memCategories struct {
	categories map[uuid.UUID]*category.Category
}

func newMemCategories() *memCategories {
	return &memCategories{categories: map[uuid.UUID]*category.Category{}}
}

func (m *memCategories) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *memCategories) List(_ context.Context, filter *category.CategoryFilter) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range m.categories {
		if c.UserID == filter.UserID {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategories) Insert(_ context.Context, create *category.CategoryCreate) (uuid.UUID, error) {
	for _, c := range m.categories {
		if c.UserID == create.UserID && c.Name == create.Name {
			return uuid.Nil, &pq.Error{Code: "23505"}
		}
	}
	id := uuid.Must(uuid.NewV4())
	m.categories[id] = &category.Category{
		ID:        id,
		UserID:    create.UserID,
		Name:      create.Name,
		IsIncome:  create.IsIncome,
		CreatedAt: time.Now().UTC(),
	}
	return id, nil
}

func (m *memCategories) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.categories, id)
	return nil
}

type memTransactions struct {
	transactions []*transaction.Transaction
}

func newMemTransactions() *memTransactions {
	return &memTransactions{}
}

func (m *memTransactions) FindByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	for _, t := range m.transactions {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memTransactions) List(_ context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	var out []*transaction.Transaction
	for _, t := range m.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.AccountID != nil && t.AccountID != *filter.AccountID {
			continue
		}
		if filter.CategoryID != nil {
			got := t.CategoryID.Ptr()
			if got == nil || *got != *filter.CategoryID {
				continue
			}
		}
		if filter.MaxCreationTime != nil && t.CreatedAt.After(*filter.MaxCreationTime) {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) > 0
	})
	return paginate(out, filter.Offset, filter.Limit), nil
}

func (m *memTransactions) Insert(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	created := &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      create.UserID,
		AccountID:   create.AccountID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        create.Type,
		Description: create.Description,
		CreatedAt:   create.CreatedAt,
	}
	m.transactions = append(m.transactions, created)
	copied := *created
	return &copied, nil
}

func paginate[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

// memStore bundles the fakes behind a storage.Writer.
type memStore struct {
	users        *memUsers
	accounts     *memAccounts
	categories   *memCategories
	transactions *memTransactions
}

func newMemStore() *memStore {
	return &memStore{
		users:        newMemUsers(),
		accounts:     newMemAccounts(),
		categories:   newMemCategories(),
		transactions: newMemTransactions(),
	}
}

func (s *memStore) writer() *storage.Writer {
	return &storage.Writer{
		Users:        s.users,
		Accounts:     s.accounts,
		Categories:   s.categories,
		Transactions: s.transactions,
	}
}

func (s *memStore) addUser(username string) *user.User {
	id := uuid.Must(uuid.NewV4())
	u := &user.User{
		ID:        id,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	s.users.users[id] = u
	return u
}

func (s *memStore) addAccount(userID uuid.UUID, name, balance string) *account.Account {
	id := uuid.Must(uuid.NewV4())
	now := time.Now().UTC()
	a := &account.Account{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Balance:   decimal.RequireFromString(balance),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.accounts.accounts[id] = a
	return a
}

func (s *memStore) addCategory(userID uuid.UUID, name string, isIncome bool) *category.Category {
	id := uuid.Must(uuid.NewV4())
	c := &category.Category{
		ID:        id,
		UserID:    userID,
		Name:      name,
		IsIncome:  isIncome,
		CreatedAt: time.Now().UTC(),
	}
	s.categories.categories[id] = c
	return c
}
