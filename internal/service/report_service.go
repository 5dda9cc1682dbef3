package service

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ledgerline/finance-reports/internal/operator"
	"github.com/ledgerline/finance-reports/internal/operator/actions"
	"github.com/ledgerline/finance-reports/internal/report"
	"github.com/ledgerline/finance-reports/internal/storage"
	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

const (
	trendWindow        = 6
	recentExpenseLimit = 5
)

// ReportService assembles the named reports from storage reads and the
// reporting core. All operations are read-only and safe to run concurrently.
type ReportService struct {
	storage *storage.Storage
	pool    *operator.OperatorDelegator
	now     func() time.Time
}

// NewReportService creates a new ReportService. The operator pool bounds the
// trend builder's per-month fan-out.
func NewReportService(store *storage.Storage, pool *operator.OperatorDelegator) *ReportService {
	return &ReportService{
		storage: store,
		pool:    pool,
		now:     time.Now,
	}
}

// Dashboard builds the landing summary: current month aggregate and budget
// standing, the trailing six month trend, the five most recent expenses, and
// all-time totals.
func (s *ReportService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardReport, error) {
	now := s.now().UTC()
	year, month := now.Year(), int(now.Month())
	period, err := report.ResolveMonth(year, month)
	if err != nil {
		return nil, err
	}

	categories, err := s.listCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:   userID,
		DateFrom: &period.Start,
		DateTo:   &period.End,
	})
	if err != nil {
		return nil, unavailable("listExpenses", err)
	}
	agg := report.BuildAggregate(rows, categories)

	budget, err := s.storage.Budgets.Find(ctx, userID, month, year, nil)
	if err != nil {
		return nil, unavailable("findBudget", err)
	}

	trend, err := s.buildMonthlyTrend(ctx, userID, year, month, trendWindow)
	if err != nil {
		return nil, unavailable("monthlyTrend", err)
	}

	recentRows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:      userID,
		Limit:       recentExpenseLimit,
		NewestFirst: true,
	})
	if err != nil {
		return nil, unavailable("recentExpenses", err)
	}

	stats, err := s.storage.Expenses.Stats(ctx, userID)
	if err != nil {
		return nil, unavailable("expenseStats", err)
	}

	return &DashboardReport{
		Year:           year,
		Month:          month,
		MonthAggregate: agg,
		Budget:         report.CompareBudget(agg, budget),
		Trend:          trend,
		RecentExpenses: convertExpenses(recentRows, categories),
		AllTimeTotal:   stats.Total,
		AllTimeCount:   int(stats.Count),
	}, nil
}

// Monthly builds the report for one calendar month, including the daily
// breakdown, budget standing, and the comparison against the previous month.
func (s *ReportService) Monthly(ctx context.Context, userID uuid.UUID, year, month int) (*MonthlyReport, error) {
	period, err := report.ResolveMonth(year, month)
	if err != nil {
		return nil, err
	}

	categories, err := s.listCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:   userID,
		DateFrom: &period.Start,
		DateTo:   &period.End,
	})
	if err != nil {
		return nil, unavailable("listExpenses", err)
	}
	agg := report.BuildAggregate(rows, categories)

	budget, err := s.storage.Budgets.Find(ctx, userID, month, year, nil)
	if err != nil {
		return nil, unavailable("findBudget", err)
	}

	prevPeriod := period.Previous()
	prevRows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:   userID,
		DateFrom: &prevPeriod.Start,
		DateTo:   &prevPeriod.End,
	})
	if err != nil {
		return nil, unavailable("previousMonth", err)
	}
	prevAgg := report.BuildAggregate(prevRows, categories)

	comparison := MonthComparison{
		PreviousTotal: prevAgg.Total,
		Delta:         agg.Total.Sub(prevAgg.Total),
	}
	comparison.DeltaPercent = report.PercentOfTotal(comparison.Delta, prevAgg.Total)

	return &MonthlyReport{
		Year:       year,
		Month:      month,
		MonthName:  period.Start.Format("January"),
		Aggregate:  agg,
		Daily:      report.DailyBreakdown(rows),
		Budget:     report.CompareBudget(agg, budget),
		Comparison: comparison,
	}, nil
}

// Weekly builds the report for the Monday-to-Monday week containing the
// anchor date, defaulting to the current week when anchor is nil.
func (s *ReportService) Weekly(ctx context.Context, userID uuid.UUID, anchor *time.Time) (*WeeklyReport, error) {
	anchorDate := s.now().UTC()
	if anchor != nil {
		anchorDate = *anchor
	}
	period := report.ResolveWeek(anchorDate)

	categories, err := s.listCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:   userID,
		DateFrom: &period.Start,
		DateTo:   &period.End,
	})
	if err != nil {
		return nil, unavailable("listExpenses", err)
	}

	return &WeeklyReport{
		Period:    period,
		Aggregate: report.BuildAggregate(rows, categories),
		Daily:     report.DailyBreakdown(rows),
	}, nil
}

// Yearly builds the report for one calendar year with a dense twelve-entry
// monthly breakdown.
func (s *ReportService) Yearly(ctx context.Context, userID uuid.UUID, year int) (*YearlyReport, error) {
	period, err := report.ResolveYear(year)
	if err != nil {
		return nil, err
	}

	categories, err := s.listCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:   userID,
		DateFrom: &period.Start,
		DateTo:   &period.End,
	})
	if err != nil {
		return nil, unavailable("listExpenses", err)
	}
	agg := report.BuildAggregate(rows, categories)

	return &YearlyReport{
		Year:       year,
		Total:      agg.Total,
		Months:     report.MonthlyBreakdown(rows, year),
		ByCategory: agg.ByCategory,
	}, nil
}

// CategoryDetail builds the drill-down for a single category in a month:
// its transactions newest first and its budget standing.
func (s *ReportService) CategoryDetail(ctx context.Context, userID uuid.UUID, year, month int, categoryID uuid.UUID) (*CategoryDetailReport, error) {
	period, err := report.ResolveMonth(year, month)
	if err != nil {
		return nil, err
	}

	categories, err := s.listCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:      userID,
		DateFrom:    &period.Start,
		DateTo:      &period.End,
		CategoryID:  &categoryID,
		NewestFirst: true,
	})
	if err != nil {
		return nil, unavailable("listExpenses", err)
	}
	agg := report.BuildAggregate(rows, categories)

	budget, err := s.storage.Budgets.Find(ctx, userID, month, year, &categoryID)
	if err != nil {
		return nil, unavailable("findBudget", err)
	}

	detail := &CategoryDetailReport{
		Year:     year,
		Month:    month,
		Total:    agg.Total,
		Count:    agg.Count,
		Budget:   report.CompareBudget(agg, budget),
		Expenses: convertExpenses(rows, categories),
	}
	if info, ok := categories[categoryID]; ok {
		detail.Category = &info
	}
	return detail, nil
}

// CategoryBreakdown builds the all-categories view for a month: per-category
// statistics, share of total spend, and budget standing, ordered by spend
// descending.
func (s *ReportService) CategoryBreakdown(ctx context.Context, userID uuid.UUID, year, month int) (*CategoryBreakdownReport, error) {
	period, err := report.ResolveMonth(year, month)
	if err != nil {
		return nil, err
	}

	categories, err := s.listCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.List(ctx, &sqlconfig.ExpenseFilter{
		UserID:   userID,
		DateFrom: &period.Start,
		DateTo:   &period.End,
	})
	if err != nil {
		return nil, unavailable("listExpenses", err)
	}
	agg := report.BuildAggregate(rows, categories)

	budgets, err := s.storage.Budgets.ListCategoryBudgets(ctx, userID, month, year)
	if err != nil {
		return nil, unavailable("listBudgets", err)
	}
	budgetIndex := make(map[uuid.UUID]*sqlconfig.Budget, len(budgets))
	for _, b := range budgets {
		if b.CategoryID.Valid {
			budgetIndex[b.CategoryID.UUID] = b
		}
	}

	grouped := make(map[uuid.UUID][]*sqlconfig.Expense)
	for _, row := range rows {
		grouped[row.CategoryID] = append(grouped[row.CategoryID], row)
	}

	entries := make([]CategoryBreakdownEntry, 0, len(grouped))
	for categoryID, groupRows := range grouped {
		groupAgg := report.BuildAggregate(groupRows, categories)
		info, ok := categories[categoryID]
		if !ok {
			info = report.CategoryInfo{ID: categoryID}
		}
		entries = append(entries, CategoryBreakdownEntry{
			Category:       info,
			Total:          groupAgg.Total,
			Count:          groupAgg.Count,
			Average:        groupAgg.Average,
			Min:            groupAgg.Min,
			Max:            groupAgg.Max,
			PercentOfTotal: report.PercentOfTotal(groupAgg.Total, agg.Total),
			Budget:         report.CompareBudget(groupAgg, budgetIndex[categoryID]),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		cmp := entries[i].Total.Cmp(entries[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		a, b := entries[i].Category.ID, entries[j].Category.ID
		return bytes.Compare(a.Bytes(), b.Bytes()) < 0
	})

	return &CategoryBreakdownReport{
		Year:       year,
		Month:      month,
		MonthName:  period.Start.Format("January"),
		Total:      agg.Total,
		Categories: entries,
	}, nil
}

// buildMonthlyTrend fans one month-total action per trailing month through
// the operator pool and joins the results, oldest first. Empty months stay in
// the series with a zero total.
func (s *ReportService) buildMonthlyTrend(ctx context.Context, userID uuid.UUID, endYear, endMonth, window int) ([]report.MonthTotal, error) {
	months, err := report.TrailingMonths(endYear, endMonth, window)
	if err != nil {
		return nil, err
	}

	trend := make([]report.MonthTotal, len(months))
	errs := make([]error, len(months))
	var wg sync.WaitGroup
	for i, ym := range months {
		wg.Add(1)
		go func(i int, ym report.YearMonth) {
			defer wg.Done()
			total, err := s.pool.Process(ctx, &actions.MonthTotal{
				UserID: userID,
				Year:   ym.Year,
				Month:  ym.Month,
			})
			trend[i] = report.MonthTotal{Year: ym.Year, Month: ym.Month, Total: total}
			errs[i] = err
		}(i, ym)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return trend, nil
}

func (s *ReportService) listCategories(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]report.CategoryInfo, error) {
	rows, err := s.storage.Categories.ListForUser(ctx, userID)
	if err != nil {
		return nil, unavailable("listCategories", err)
	}
	return report.CategoryIndex(rows), nil
}

func convertExpenses(rows []*sqlconfig.Expense, categories map[uuid.UUID]report.CategoryInfo) []Expense {
	converted := make([]Expense, len(rows))
	for i, row := range rows {
		expense := Expense{
			ID:          row.ID,
			CategoryID:  row.CategoryID,
			Amount:      row.Amount,
			Date:        row.ExpenseDate,
			Description: row.Description,
		}
		if info, ok := categories[row.CategoryID]; ok {
			expense.Category = &info
		}
		if row.PaymentMethod.Valid {
			expense.PaymentMethod = row.PaymentMethod.String
		}
		if row.Notes.Valid {
			expense.Notes = row.Notes.String
		}
		converted[i] = expense
	}
	return converted
}
