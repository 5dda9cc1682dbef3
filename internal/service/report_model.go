package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/report"
)

// Expense represents an expense in the service layer, with category display
// metadata resolved. Category is nil when the referenced category no longer
// exists.
type Expense struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	Category      *report.CategoryInfo
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	PaymentMethod string
	Notes         string
}

// DashboardReport is the composite summary for the landing view.
type DashboardReport struct {
	Year           int
	Month          int
	MonthAggregate report.Aggregate
	Budget         report.BudgetComparison
	Trend          []report.MonthTotal
	RecentExpenses []Expense
	AllTimeTotal   decimal.Decimal
	AllTimeCount   int
}

// MonthComparison relates a month's spend to the immediately preceding
// month. DeltaPercent is nil when the previous month had no spend.
type MonthComparison struct {
	PreviousTotal decimal.Decimal
	Delta         decimal.Decimal
	DeltaPercent  *decimal.Decimal
}

// MonthlyReport is the full report for one calendar month.
type MonthlyReport struct {
	Year       int
	Month      int
	MonthName  string
	Aggregate  report.Aggregate
	Daily      []report.DayTotal
	Budget     report.BudgetComparison
	Comparison MonthComparison
}

// WeeklyReport is the report for one Monday-to-Monday week.
type WeeklyReport struct {
	Period    report.Period
	Aggregate report.Aggregate
	Daily     []report.DayTotal
}

// YearlyReport is the report for one calendar year. Months always has
// twelve entries, zero-filled where nothing was spent.
type YearlyReport struct {
	Year       int
	Total      decimal.Decimal
	Months     []report.MonthTotal
	ByCategory []report.CategoryAggregate
}

// CategoryDetailReport is the single-category drill-down for a month.
type CategoryDetailReport struct {
	Year     int
	Month    int
	Category *report.CategoryInfo
	Total    decimal.Decimal
	Count    int
	Budget   report.BudgetComparison
	Expenses []Expense
}

// CategoryBreakdownEntry is one category's spend, statistics, and budget
// standing within a month.
type CategoryBreakdownEntry struct {
	Category       report.CategoryInfo
	Total          decimal.Decimal
	Count          int
	Average        decimal.Decimal
	Min            decimal.Decimal
	Max            decimal.Decimal
	PercentOfTotal *decimal.Decimal
	Budget         report.BudgetComparison
}

// CategoryBreakdownReport covers every category with spend in a month,
// ordered by spend descending.
type CategoryBreakdownReport struct {
	Year       int
	Month      int
	MonthName  string
	Total      decimal.Decimal
	Categories []CategoryBreakdownEntry
}

// Income represents an income record in the service layer.
type Income struct {
	ID                 uuid.UUID
	Amount             decimal.Decimal
	Source             string
	Date               time.Time
	IsRecurring        bool
	RecurringFrequency string
	Notes              string
}

// SourceTotal is one entry of the per-source income breakdown.
type SourceTotal struct {
	Source string
	Total  decimal.Decimal
	Count  int
}

// IncomeSummary aggregates a month's income independently of expenses.
type IncomeSummary struct {
	Year        int
	Month       int
	Total       decimal.Decimal
	Count       int
	YearlyTotal decimal.Decimal
	Sources     []SourceTotal
	Recent      []Income
}
