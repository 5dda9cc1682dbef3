// Package reports contains the Huma handlers for the report endpoints.
// Response models serialize money as numbers rounded to 2 decimal places and
// dates as YYYY-MM-DD.
package reports

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/report"
	"github.com/ledgerline/finance-reports/internal/service"
)

// Category is the API response model for category display metadata.
type Category struct {
	ID    string `json:"id" doc:"Category UUID"`
	Name  string `json:"name" doc:"Display name"`
	Icon  string `json:"icon" doc:"Icon identifier"`
	Color string `json:"color" doc:"Display color"`
}

// CategoryAggregate is one group of a by-category breakdown.
type CategoryAggregate struct {
	Category Category `json:"category"`
	Total    float64  `json:"total" doc:"Total spend"`
	Count    int      `json:"count" doc:"Number of expenses"`
}

// Expense is the API response model for an expense.
type Expense struct {
	ID            string    `json:"id" doc:"Expense UUID"`
	Category      *Category `json:"category,omitempty" doc:"Resolved category, absent when the category no longer exists"`
	Amount        float64   `json:"amount" doc:"Expense amount"`
	Date          string    `json:"date" doc:"Expense date, YYYY-MM-DD"`
	Description   string    `json:"description" doc:"Free-form description"`
	PaymentMethod string    `json:"paymentMethod,omitempty" doc:"Payment method"`
	Notes         string    `json:"notes,omitempty" doc:"Free-form notes"`
}

// MonthTotal is one entry of a monthly series.
type MonthTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// DayTotal is one entry of a daily series. Only days with at least one
// transaction appear.
type DayTotal struct {
	Date  string  `json:"date" doc:"Calendar day, YYYY-MM-DD"`
	Total float64 `json:"total"`
}

// Period identifies the month a report covers.
type Period struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"monthName,omitempty" doc:"English month name"`
}

func money(d decimal.Decimal) float64 {
	value, _ := d.Round(2).Float64()
	return value
}

func moneyPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	value := money(*d)
	return &value
}

func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func convertCategory(info report.CategoryInfo) Category {
	return Category{
		ID:    info.ID.String(),
		Name:  info.Name,
		Icon:  info.Icon,
		Color: info.Color,
	}
}

func convertCategoryAggregates(groups []report.CategoryAggregate) []CategoryAggregate {
	converted := make([]CategoryAggregate, len(groups))
	for i, group := range groups {
		converted[i] = CategoryAggregate{
			Category: convertCategory(group.Category),
			Total:    money(group.Total),
			Count:    group.Count,
		}
	}
	return converted
}

func convertExpenses(expenses []service.Expense) []Expense {
	converted := make([]Expense, len(expenses))
	for i, expense := range expenses {
		item := Expense{
			ID:            expense.ID.String(),
			Amount:        money(expense.Amount),
			Date:          dateString(expense.Date),
			Description:   expense.Description,
			PaymentMethod: expense.PaymentMethod,
			Notes:         expense.Notes,
		}
		if expense.Category != nil {
			category := convertCategory(*expense.Category)
			item.Category = &category
		}
		converted[i] = item
	}
	return converted
}

func convertTrend(trend []report.MonthTotal) []MonthTotal {
	converted := make([]MonthTotal, len(trend))
	for i, entry := range trend {
		converted[i] = MonthTotal{Year: entry.Year, Month: entry.Month, Total: money(entry.Total)}
	}
	return converted
}

func convertDays(days []report.DayTotal) []DayTotal {
	converted := make([]DayTotal, len(days))
	for i, day := range days {
		converted[i] = DayTotal{Date: dateString(day.Date), Total: money(day.Total)}
	}
	return converted
}

// budgetFields flattens a budget comparison into the nullable response
// fields. All three stay nil when no budget is set.
func budgetFields(comparison report.BudgetComparison) (budget, remaining *float64, percentage *int64) {
	return moneyPtr(comparison.Budget), moneyPtr(comparison.Remaining), comparison.Percentage
}

// serviceError maps core errors onto HTTP errors: invalid periods are client
// errors, failed sub-steps are server errors carrying the step name.
func serviceError(message string, err error) error {
	if errors.Is(err, report.ErrInvalidPeriod) {
		return huma.NewError(http.StatusBadRequest, err.Error())
	}
	var unavailableErr *service.ReportUnavailableError
	if errors.As(err, &unavailableErr) {
		return huma.NewError(http.StatusInternalServerError, message+": "+unavailableErr.Step, err)
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
