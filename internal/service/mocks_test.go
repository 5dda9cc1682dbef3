package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/ledgerline/finance-reports/internal/storage"
	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

type mockExpenseTable struct {
	mock.Mock
}

func (m *mockExpenseTable) List(ctx context.Context, filter *sqlconfig.ExpenseFilter) ([]*sqlconfig.Expense, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Expense)
	return rows, args.Error(1)
}

func (m *mockExpenseTable) Stats(ctx context.Context, userID uuid.UUID) (*sqlconfig.ExpenseStats, error) {
	args := m.Called(ctx, userID)
	stats, _ := args.Get(0).(*sqlconfig.ExpenseStats)
	return stats, args.Error(1)
}

type mockIncomeTable struct {
	mock.Mock
}

func (m *mockIncomeTable) List(ctx context.Context, filter *sqlconfig.IncomeFilter) ([]*sqlconfig.Income, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeTable) Stats(ctx context.Context, filter *sqlconfig.IncomeFilter) (*sqlconfig.IncomeStats, error) {
	args := m.Called(ctx, filter)
	stats, _ := args.Get(0).(*sqlconfig.IncomeStats)
	return stats, args.Error(1)
}

type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) Find(ctx context.Context, userID uuid.UUID, month, year int, categoryID *uuid.UUID) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, month, year, categoryID)
	budget, _ := args.Get(0).(*sqlconfig.Budget)
	return budget, args.Error(1)
}

func (m *mockBudgetTable) ListCategoryBudgets(ctx context.Context, userID uuid.UUID, month, year int) ([]*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, month, year)
	budgets, _ := args.Get(0).([]*sqlconfig.Budget)
	return budgets, args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) ListForUser(ctx context.Context, userID uuid.UUID) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]*sqlconfig.Category)
	return categories, args.Error(1)
}

type testTables struct {
	expenses   *mockExpenseTable
	incomes    *mockIncomeTable
	budgets    *mockBudgetTable
	categories *mockCategoryTable
}

func newTestTables() *testTables {
	return &testTables{
		expenses:   new(mockExpenseTable),
		incomes:    new(mockIncomeTable),
		budgets:    new(mockBudgetTable),
		categories: new(mockCategoryTable),
	}
}

func (tt *testTables) storage() *storage.Storage {
	return &storage.Storage{
		Expenses:   tt.expenses,
		Incomes:    tt.incomes,
		Budgets:    tt.budgets,
		Categories: tt.categories,
	}
}
