package report

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

func testExpense(amount string, date time.Time, categoryID uuid.UUID) *sqlconfig.Expense {
	return &sqlconfig.Expense{
		ID:          uuid.Must(uuid.NewV4()),
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString(amount),
		ExpenseDate: date,
	}
}

func testCategories(ids ...uuid.UUID) map[uuid.UUID]CategoryInfo {
	index := make(map[uuid.UUID]CategoryInfo, len(ids))
	for i, id := range ids {
		index[id] = CategoryInfo{ID: id, Name: "Category " + string(rune('A'+i))}
	}
	return index
}

func TestBuildAggregate_Empty(t *testing.T) {
	agg := BuildAggregate(nil, testCategories())

	assert.True(t, agg.Total.IsZero())
	assert.Equal(t, 0, agg.Count)
	assert.True(t, agg.Average.IsZero())
	assert.True(t, agg.Min.IsZero())
	assert.True(t, agg.Max.IsZero())
	assert.NotNil(t, agg.ByCategory)
	assert.Empty(t, agg.ByCategory)
}

func TestBuildAggregate_Statistics(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	agg := BuildAggregate([]*sqlconfig.Expense{
		testExpense("10.00", day, categoryID),
		testExpense("25.50", day, categoryID),
		testExpense("4.25", day, categoryID),
	}, testCategories(categoryID))

	assert.Equal(t, "39.75", agg.Total.String())
	assert.Equal(t, 3, agg.Count)
	assert.Equal(t, "13.25", agg.Average.String())
	assert.Equal(t, "4.25", agg.Min.String())
	assert.Equal(t, "25.5", agg.Max.String())
}

func TestBuildAggregate_AverageRoundsToCents(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	agg := BuildAggregate([]*sqlconfig.Expense{
		testExpense("10.00", day, categoryID),
		testExpense("10.00", day, categoryID),
		testExpense("10.01", day, categoryID),
	}, testCategories(categoryID))

	// 30.01 / 3 = 10.00333..., rounded to two places.
	assert.Equal(t, "10", agg.Average.String())
}

func TestBuildAggregate_GroupsByCategory(t *testing.T) {
	food := uuid.Must(uuid.NewV4())
	travel := uuid.Must(uuid.NewV4())
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	agg := BuildAggregate([]*sqlconfig.Expense{
		testExpense("5.00", day, food),
		testExpense("20.00", day, travel),
		testExpense("7.00", day, food),
	}, testCategories(food, travel))

	assert.Len(t, agg.ByCategory, 2)
	// Largest total first.
	assert.Equal(t, travel, agg.ByCategory[0].Category.ID)
	assert.Equal(t, "20", agg.ByCategory[0].Total.String())
	assert.Equal(t, 1, agg.ByCategory[0].Count)
	assert.Equal(t, food, agg.ByCategory[1].Category.ID)
	assert.Equal(t, "12", agg.ByCategory[1].Total.String())
	assert.Equal(t, 2, agg.ByCategory[1].Count)
}

func TestBuildAggregate_OrderIndependent(t *testing.T) {
	a := uuid.Must(uuid.NewV4())
	b := uuid.Must(uuid.NewV4())
	c := uuid.Must(uuid.NewV4())
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	categories := testCategories(a, b, c)

	// b and c tie on total; the category ID breaks the tie.
	rows := []*sqlconfig.Expense{
		testExpense("30.00", day, a),
		testExpense("10.00", day, b),
		testExpense("10.00", day, c),
	}
	reversed := []*sqlconfig.Expense{rows[2], rows[1], rows[0]}

	first := BuildAggregate(rows, categories)
	second := BuildAggregate(reversed, categories)

	assert.Equal(t, len(first.ByCategory), len(second.ByCategory))
	for i := range first.ByCategory {
		assert.Equal(t, first.ByCategory[i].Category.ID, second.ByCategory[i].Category.ID)
		assert.True(t, first.ByCategory[i].Total.Equal(second.ByCategory[i].Total))
	}
	assert.Equal(t, a, first.ByCategory[0].Category.ID)
}

func TestBuildAggregate_UnknownCategory(t *testing.T) {
	orphaned := uuid.Must(uuid.NewV4())
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	agg := BuildAggregate([]*sqlconfig.Expense{
		testExpense("9.99", day, orphaned),
	}, testCategories())

	assert.Len(t, agg.ByCategory, 1)
	assert.Equal(t, orphaned, agg.ByCategory[0].Category.ID)
	assert.Empty(t, agg.ByCategory[0].Category.Name)
}

func TestCategoryIndex(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	index := CategoryIndex([]*sqlconfig.Category{
		{ID: id, Name: "Food", Icon: "utensils", Color: "#ff0000"},
	})

	info, ok := index[id]
	assert.True(t, ok)
	assert.Equal(t, "Food", info.Name)
	assert.Equal(t, "utensils", info.Icon)
	assert.Equal(t, "#ff0000", info.Color)
}
