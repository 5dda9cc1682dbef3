package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ICategoryTable = (*CategoryTable)(nil)

type CategoryTable struct {
	exec bob.Executor
}

func NewCategoryTable(db *sql.DB) *CategoryTable {
	return &CategoryTable{exec: bob.NewDB(db)}
}

// ListForUser merges the user's own categories with the global defaults
// (NULL user_id) at the read boundary.
func (t *CategoryTable) ListForUser(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "icon", "color", "is_default"),
		sm.From("categories"),
		sm.Where(psql.Raw("(user_id = ? OR user_id IS NULL)", userID)),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
}
