package report

import (
	"bytes"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

// CategoryInfo is the display metadata attached to grouped results.
type CategoryInfo struct {
	ID    uuid.UUID
	Name  string
	Icon  string
	Color string
}

// CategoryAggregate is one group of the by-category breakdown.
type CategoryAggregate struct {
	Category CategoryInfo
	Total    decimal.Decimal
	Count    int
}

// Aggregate is the statistical summary of a filtered expense set. A set with
// no rows yields all-zero fields and an empty (non-nil) ByCategory.
type Aggregate struct {
	Total      decimal.Decimal
	Count      int
	Average    decimal.Decimal
	Min        decimal.Decimal
	Max        decimal.Decimal
	ByCategory []CategoryAggregate
}

// CategoryIndex builds a lookup of display metadata keyed by category ID.
func CategoryIndex(categories []*sqlconfig.Category) map[uuid.UUID]CategoryInfo {
	index := make(map[uuid.UUID]CategoryInfo, len(categories))
	for _, category := range categories {
		index[category.ID] = CategoryInfo{
			ID:    category.ID,
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
		}
	}
	return index
}

// BuildAggregate computes sum, count, average, min, and max over the rows,
// plus the per-category breakdown. The breakdown is ordered by total
// descending with category ID ascending as the tie-break, so the result is
// deterministic for any input order.
func BuildAggregate(rows []*sqlconfig.Expense, categories map[uuid.UUID]CategoryInfo) Aggregate {
	agg := Aggregate{
		Total:      decimal.Zero,
		Average:    decimal.Zero,
		Min:        decimal.Zero,
		Max:        decimal.Zero,
		ByCategory: []CategoryAggregate{},
	}
	if len(rows) == 0 {
		return agg
	}

	groups := make(map[uuid.UUID]*CategoryAggregate)
	for i, row := range rows {
		agg.Total = agg.Total.Add(row.Amount)
		if i == 0 {
			agg.Min = row.Amount
			agg.Max = row.Amount
		} else {
			if row.Amount.LessThan(agg.Min) {
				agg.Min = row.Amount
			}
			if row.Amount.GreaterThan(agg.Max) {
				agg.Max = row.Amount
			}
		}

		group, ok := groups[row.CategoryID]
		if !ok {
			info, known := categories[row.CategoryID]
			if !known {
				info = CategoryInfo{ID: row.CategoryID}
			}
			group = &CategoryAggregate{Category: info, Total: decimal.Zero}
			groups[row.CategoryID] = group
		}
		group.Total = group.Total.Add(row.Amount)
		group.Count++
	}

	agg.Count = len(rows)
	agg.Average = agg.Total.Div(decimal.NewFromInt(int64(agg.Count))).Round(2)

	agg.ByCategory = make([]CategoryAggregate, 0, len(groups))
	for _, group := range groups {
		agg.ByCategory = append(agg.ByCategory, *group)
	}
	sortCategoryAggregates(agg.ByCategory)

	return agg
}

func sortCategoryAggregates(groups []CategoryAggregate) {
	sort.Slice(groups, func(i, j int) bool {
		cmp := groups[i].Total.Cmp(groups[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		a, b := groups[i].Category.ID, groups[j].Category.ID
		return bytes.Compare(a.Bytes(), b.Bytes()) < 0
	})
}
