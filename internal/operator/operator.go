package operator

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/carson-networks/wallet-server/internal/faults"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// WriteOpener opens a unit of work for a single action.
type WriteOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriteOpener
	queue   chan ActionItem
}

func NewOperator(s WriteOpener, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

// processItem runs one action inside one database transaction. A failure
// at any point rolls everything back, so no partial state is observable.
func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback(item.ctx)
		item.response <- ActionItemResponse{err: classify(err)}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		item.response <- ActionItemResponse{err: classify(err)}
		return
	}

	item.response <- ActionItemResponse{}
}

// classify maps Postgres concurrency failures to the retryable conflict
// fault so callers know the whole operation can simply be retried.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return faults.ConflictRetryable("concurrent balance update, retry the operation")
	}
	return err
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
