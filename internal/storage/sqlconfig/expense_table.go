package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ IExpenseTable = (*ExpenseTable)(nil)

var expenseColumns = []any{
	"id", "user_id", "category_id", "amount", "expense_date",
	"description", "payment_method", "notes", "created_at",
}

type ExpenseTable struct {
	exec bob.Executor
}

func NewExpenseTable(db *sql.DB) *ExpenseTable {
	return &ExpenseTable{exec: bob.NewDB(db)}
}

// List returns expenses matching the filter. DateFrom is inclusive and
// DateTo exclusive so a day on a period boundary is never counted twice.
func (t *ExpenseTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
	}

	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.DateFrom != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("expense_date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("expense_date").LT(psql.Arg(*filter.DateTo))))
	}
	if filter.CategoryID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if len(whereMods) == 1 {
		queryMods = append(queryMods, whereMods[0])
	} else {
		queryMods = append(queryMods, psql.WhereAnd(whereMods...))
	}

	if filter.NewestFirst {
		queryMods = append(queryMods,
			sm.OrderBy("expense_date").Desc(),
			sm.OrderBy("created_at").Desc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy("expense_date").Asc(),
			sm.OrderBy("id").Asc(),
		)
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
}

// Stats returns the all-time expense total and row count for a user.
func (t *ExpenseTable) Stats(ctx context.Context, userID uuid.UUID) (*ExpenseStats, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("COALESCE(SUM(amount), 0) AS total"),
			psql.Raw("COUNT(*) AS count"),
		),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	return bob.One(ctx, t.exec, q, scan.StructMapper[*ExpenseStats]())
}
