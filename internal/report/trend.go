package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month int
}

// MonthTotal is one entry of a monthly series.
type MonthTotal struct {
	Year  int
	Month int
	Total decimal.Decimal
	Count int
}

// DayTotal is one entry of a daily series.
type DayTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// TrailingMonths lists the window of calendar months ending at
// (endYear, endMonth) inclusive, oldest first. The result always has exactly
// window entries so consumers can chart a dense timeline.
func TrailingMonths(endYear, endMonth, window int) ([]YearMonth, error) {
	if endMonth < 1 || endMonth > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidPeriod, endMonth)
	}
	if endYear <= 0 {
		return nil, fmt.Errorf("%w: year %d", ErrInvalidPeriod, endYear)
	}
	if window < 1 {
		return nil, fmt.Errorf("%w: window %d", ErrInvalidPeriod, window)
	}

	months := make([]YearMonth, window)
	year, month := endYear, endMonth
	for i := window - 1; i >= 0; i-- {
		months[i] = YearMonth{Year: year, Month: month}
		year, month = PreviousMonth(year, month)
	}
	return months, nil
}

// DailyBreakdown groups the rows per calendar day, ascending. Days without
// transactions are omitted; the dense zero-filled form exists only for
// fixed-axis series (monthly trend, yearly breakdown).
func DailyBreakdown(rows []*sqlconfig.Expense) []DayTotal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, row := range rows {
		day := time.Date(
			row.ExpenseDate.Year(), row.ExpenseDate.Month(), row.ExpenseDate.Day(),
			0, 0, 0, 0, time.UTC,
		)
		totals[day] = totals[day].Add(row.Amount)
	}

	breakdown := make([]DayTotal, 0, len(totals))
	for day, total := range totals {
		breakdown = append(breakdown, DayTotal{Date: day, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Date.Before(breakdown[j].Date)
	})
	return breakdown
}

// MonthlyBreakdown groups a year's rows into twelve dense entries, one per
// month, zero-filled where no transactions exist. Rows outside the year are
// ignored.
func MonthlyBreakdown(rows []*sqlconfig.Expense, year int) []MonthTotal {
	breakdown := make([]MonthTotal, 12)
	for i := range breakdown {
		breakdown[i] = MonthTotal{Year: year, Month: i + 1, Total: decimal.Zero}
	}

	for _, row := range rows {
		if row.ExpenseDate.Year() != year {
			continue
		}
		i := int(row.ExpenseDate.Month()) - 1
		breakdown[i].Total = breakdown[i].Total.Add(row.Amount)
		breakdown[i].Count++
	}
	return breakdown
}
