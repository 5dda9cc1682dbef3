package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ IBudgetTable = (*BudgetTable)(nil)

var budgetColumns = []any{"id", "user_id", "category_id", "amount", "month", "year"}

type BudgetTable struct {
	exec bob.Executor
}

func NewBudgetTable(db *sql.DB) *BudgetTable {
	return &BudgetTable{exec: bob.NewDB(db)}
}

// Find returns the single budget for (user, category, month, year), or nil
// when none is set. The schema's uniqueness constraint guarantees at most
// one match.
func (t *BudgetTable) Find(ctx context.Context, userID uuid.UUID, month, year int, categoryID *uuid.UUID) (*Budget, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
	}
	if categoryID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*categoryID))))
	} else {
		whereMods = append(whereMods, sm.Where(psql.Quote("category_id").IsNull()))
	}

	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		psql.WhereAnd(whereMods...),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ListCategoryBudgets returns every per-category budget for the period.
func (t *BudgetTable) ListCategoryBudgets(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		psql.WhereAnd(
			sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
			sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
			sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
			sm.Where(psql.Quote("category_id").IsNotNull()),
		),
		sm.OrderBy("category_id").Asc(),
	)

	return bob.All(ctx, t.exec, q, scan.StructMapper[*Budget]())
}
