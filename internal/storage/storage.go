package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/ledgerline/finance-reports/internal/config"
	"github.com/ledgerline/finance-reports/internal/storage/sqlconfig"
)

type Storage struct {
	DB         *sql.DB
	Expenses   sqlconfig.IExpenseTable
	Incomes    sqlconfig.IIncomeTable
	Budgets    sqlconfig.IBudgetTable
	Categories sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:         db,
		Expenses:   sqlconfig.NewExpenseTable(db),
		Incomes:    sqlconfig.NewIncomeTable(db),
		Budgets:    sqlconfig.NewBudgetTable(db),
		Categories: sqlconfig.NewCategoryTable(db),
	}
}
