package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/storage"
)

// IAction is a read-side aggregation job executed on the operator pool.
// Actions only read; the reporting core never writes.
type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) (decimal.Decimal, error)
}
