package service

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/report"
	"github.com/ledgerline/finance-reports/internal/storage"
	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

const recentIncomeLimit = 5

// IncomeService aggregates income records. Incomes have no category and are
// summarized independently of expenses.
type IncomeService struct {
	storage *storage.Storage
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(store *storage.Storage) *IncomeService {
	return &IncomeService{storage: store}
}

// MonthlySummary builds a month's income summary: total and count, the
// per-source breakdown, the year-to-date total, and the five most recent
// records of the month.
func (s *IncomeService) MonthlySummary(ctx context.Context, userID uuid.UUID, year, month int) (*IncomeSummary, error) {
	period, err := report.ResolveMonth(year, month)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Incomes.List(ctx, &sqlconfig.IncomeFilter{
		UserID:      userID,
		DateFrom:    &period.Start,
		DateTo:      &period.End,
		NewestFirst: true,
	})
	if err != nil {
		return nil, unavailable("listIncomes", err)
	}

	total := decimal.Zero
	sources := make(map[string]*SourceTotal)
	for _, row := range rows {
		total = total.Add(row.Amount)
		entry, ok := sources[row.Source]
		if !ok {
			entry = &SourceTotal{Source: row.Source, Total: decimal.Zero}
			sources[row.Source] = entry
		}
		entry.Total = entry.Total.Add(row.Amount)
		entry.Count++
	}

	breakdown := make([]SourceTotal, 0, len(sources))
	for _, entry := range sources {
		breakdown = append(breakdown, *entry)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		cmp := breakdown[i].Total.Cmp(breakdown[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return breakdown[i].Source < breakdown[j].Source
	})

	yearPeriod, err := report.ResolveYear(year)
	if err != nil {
		return nil, err
	}
	stats, err := s.storage.Incomes.Stats(ctx, &sqlconfig.IncomeFilter{
		UserID:   userID,
		DateFrom: &yearPeriod.Start,
		DateTo:   &yearPeriod.End,
	})
	if err != nil {
		return nil, unavailable("incomeStats", err)
	}

	recent := rows
	if len(recent) > recentIncomeLimit {
		recent = recent[:recentIncomeLimit]
	}

	return &IncomeSummary{
		Year:        year,
		Month:       month,
		Total:       total,
		Count:       len(rows),
		YearlyTotal: stats.Total,
		Sources:     breakdown,
		Recent:      convertIncomes(recent),
	}, nil
}

func convertIncomes(rows []*sqlconfig.Income) []Income {
	converted := make([]Income, len(rows))
	for i, row := range rows {
		income := Income{
			ID:          row.ID,
			Amount:      row.Amount,
			Source:      row.Source,
			Date:        row.IncomeDate,
			IsRecurring: row.IsRecurring,
		}
		if row.RecurringFrequency.Valid {
			income.RecurringFrequency = row.RecurringFrequency.String
		}
		if row.Notes.Valid {
			income.Notes = row.Notes.String
		}
		converted[i] = income
	}
	return converted
}
