package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

func aggregateWithTotal(total string) Aggregate {
	return Aggregate{Total: decimal.RequireFromString(total)}
}

func budgetOf(amount string) *sqlconfig.Budget {
	return &sqlconfig.Budget{Amount: decimal.RequireFromString(amount)}
}

func TestCompareBudget_NoBudget(t *testing.T) {
	comparison := CompareBudget(aggregateWithTotal("250.00"), nil)

	assert.Nil(t, comparison.Budget)
	assert.Nil(t, comparison.Remaining)
	assert.Nil(t, comparison.Percentage)
	assert.False(t, comparison.IsOverBudget)
}

func TestCompareBudget_UnderBudget(t *testing.T) {
	comparison := CompareBudget(aggregateWithTotal("250.00"), budgetOf("1000.00"))

	assert.NotNil(t, comparison.Budget)
	assert.Equal(t, "1000", comparison.Budget.String())
	assert.NotNil(t, comparison.Remaining)
	assert.Equal(t, "750", comparison.Remaining.String())
	assert.NotNil(t, comparison.Percentage)
	assert.Equal(t, int64(25), *comparison.Percentage)
	assert.False(t, comparison.IsOverBudget)
}

func TestCompareBudget_OverBudget(t *testing.T) {
	comparison := CompareBudget(aggregateWithTotal("1200.00"), budgetOf("1000.00"))

	assert.Equal(t, "-200", comparison.Remaining.String())
	assert.Equal(t, int64(120), *comparison.Percentage)
	assert.True(t, comparison.IsOverBudget)
}

func TestCompareBudget_ExactlyAtBudget(t *testing.T) {
	comparison := CompareBudget(aggregateWithTotal("1000.00"), budgetOf("1000.00"))

	assert.Equal(t, int64(100), *comparison.Percentage)
	assert.False(t, comparison.IsOverBudget)
}

func TestCompareBudget_PercentageRoundsHalfUp(t *testing.T) {
	comparison := CompareBudget(aggregateWithTotal("125.00"), budgetOf("1000.00"))

	// 12.5% rounds up to 13.
	assert.Equal(t, int64(13), *comparison.Percentage)
}

func TestCompareBudget_ZeroAmount(t *testing.T) {
	comparison := CompareBudget(aggregateWithTotal("50.00"), budgetOf("0"))

	assert.NotNil(t, comparison.Budget)
	assert.NotNil(t, comparison.Remaining)
	assert.Equal(t, "-50", comparison.Remaining.String())
	assert.Nil(t, comparison.Percentage)
	assert.False(t, comparison.IsOverBudget)
}

func TestCompareBudget_ZeroSpend(t *testing.T) {
	comparison := CompareBudget(aggregateWithTotal("0"), budgetOf("300.00"))

	assert.Equal(t, "300", comparison.Remaining.String())
	assert.Equal(t, int64(0), *comparison.Percentage)
	assert.False(t, comparison.IsOverBudget)
}

func TestPercentOfTotal(t *testing.T) {
	percent := PercentOfTotal(decimal.RequireFromString("25"), decimal.RequireFromString("80"))

	assert.NotNil(t, percent)
	assert.Equal(t, "31.3", percent.String())
}

func TestPercentOfTotal_ZeroWhole(t *testing.T) {
	assert.Nil(t, PercentOfTotal(decimal.RequireFromString("25"), decimal.Zero))
}

func TestPercentOfTotal_NegativePart(t *testing.T) {
	percent := PercentOfTotal(decimal.RequireFromString("-50"), decimal.RequireFromString("200"))

	assert.NotNil(t, percent)
	assert.Equal(t, "-25", percent.String())
}
