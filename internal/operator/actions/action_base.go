package actions

import (
	"context"

	"github.com/carson-networks/wallet-server/internal/storage"
)

// IAction is one mutating operation. Perform runs entirely inside the
// writer's database transaction; the operator commits or rolls back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
