package report

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

// BudgetComparison joins aggregated spend against a stored budget. Nil
// pointer fields mean "no budget set" and are distinct from a zero budget.
type BudgetComparison struct {
	Budget       *decimal.Decimal
	Remaining    *decimal.Decimal
	Percentage   *int64
	IsOverBudget bool
}

// CompareBudget derives remaining amount, percentage used, and the
// over-budget flag. With a nil budget every field stays nil. A zero-amount
// budget yields a nil percentage rather than dividing by zero.
func CompareBudget(agg Aggregate, budget *sqlconfig.Budget) BudgetComparison {
	if budget == nil {
		return BudgetComparison{}
	}

	amount := budget.Amount
	remaining := amount.Sub(agg.Total)
	comparison := BudgetComparison{
		Budget:    &amount,
		Remaining: &remaining,
	}

	if amount.IsPositive() {
		// Round half up to a whole percent for display; Remaining keeps
		// full precision.
		percentage := agg.Total.Div(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		comparison.Percentage = &percentage
		comparison.IsOverBudget = agg.Total.GreaterThan(amount)
	}

	return comparison
}

// PercentOfTotal returns part/whole as a percentage with one fraction digit,
// or nil when the whole is zero.
func PercentOfTotal(part, whole decimal.Decimal) *decimal.Decimal {
	if !whole.IsPositive() {
		return nil
	}
	percent := part.Div(whole).Mul(decimal.NewFromInt(100)).Round(1)
	return &percent
}
