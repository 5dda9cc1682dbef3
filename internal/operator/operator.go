package operator

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/operator/actions"
	"github.com/ledgerline/finance-reports/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
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

func (o *Operator) processItem(item ActionItem) {
	total, err := item.action.Perform(item.ctx, o.storage)
	item.response <- ActionItemResponse{total: total, err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	total decimal.Decimal
	err   error
}
