package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/report"
	"github.com/ledgerline/finance-reports/internal/storage"
	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

// MonthTotal computes a user's total spend for one calendar month. The trend
// builder fans one of these out per trailing month.
type MonthTotal struct {
	UserID uuid.UUID
	Year   int
	Month  int
	IAction
}

func (a *MonthTotal) Perform(ctx context.Context, store *storage.Storage) (decimal.Decimal, error) {
	period, err := report.ResolveMonth(a.Year, a.Month)
	if err != nil {
		return decimal.Zero, err
	}

	rows, err := store.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:   a.UserID,
		DateFrom: &period.Start,
		DateTo:   &period.End,
	})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total, nil
}
