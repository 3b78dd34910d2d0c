package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/wallet-server/internal/config"
	"github.com/carson-networks/wallet-server/internal/storage/account"
	"github.com/carson-networks/wallet-server/internal/storage/category"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
	"github.com/carson-networks/wallet-server/internal/storage/user"
)

// Storage is the root of the persistence layer. The table fields give
// autocommit read access; Write opens a unit of work for mutations.
type Storage struct {
	DB           *sql.DB
	bob          bob.DB
	Users        user.IUserReader
	Accounts     account.IAccountReader
	Categories   category.ICategoryReader
	Transactions transaction.ITransactionReader
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return NewStorageWithDB(db)
}

// NewStorageWithDB wraps an existing database handle. Used directly by
// integration tests.
func NewStorageWithDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		bob:          bobDB,
		Users:        user.NewReader(bobDB),
		Accounts:     account.NewReader(bobDB),
		Categories:   category.NewReader(bobDB),
		Transactions: transaction.NewReader(bobDB),
	}
}

// Write begins a database transaction and returns a Writer scoped to
// it. The caller owns the Commit/Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bob.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
