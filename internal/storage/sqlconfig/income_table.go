package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ IIncomeTable = (*IncomeTable)(nil)

var incomeColumns = []any{
	"id", "user_id", "amount", "source", "income_date",
	"is_recurring", "recurring_frequency", "notes", "created_at",
}

type IncomeTable struct {
	exec bob.Executor
}

func NewIncomeTable(db *sql.DB) *IncomeTable {
	return &IncomeTable{exec: bob.NewDB(db)}
}

// List returns incomes matching the filter, DateFrom inclusive and
// DateTo exclusive.
func (t *IncomeTable) List(ctx context.Context, filter *IncomeFilter) ([]*Income, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(incomeColumns...),
		sm.From("incomes"),
	}
	queryMods = append(queryMods, incomeWhere(filter))

	if filter.NewestFirst {
		queryMods = append(queryMods,
			sm.OrderBy("income_date").Desc(),
			sm.OrderBy("created_at").Desc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy("income_date").Asc(),
			sm.OrderBy("id").Asc(),
		)
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Income]())
}

// Stats returns the income total and row count for the filtered range.
func (t *IncomeTable) Stats(ctx context.Context, filter *IncomeFilter) (*IncomeStats, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("COALESCE(SUM(amount), 0) AS total"),
			psql.Raw("COUNT(*) AS count"),
		),
		sm.From("incomes"),
		incomeWhere(filter),
	)

	return bob.One(ctx, t.exec, q, scan.StructMapper[*IncomeStats]())
}

func incomeWhere(filter *IncomeFilter) bob.Mod[*dialect.SelectQuery] {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.DateFrom != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("income_date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("income_date").LT(psql.Arg(*filter.DateTo))))
	}
	if len(whereMods) == 1 {
		return whereMods[0]
	}
	return psql.WhereAnd(whereMods...)
}
