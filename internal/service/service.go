package service

import (
	"github.com/ledgerline/finance-reports/internal/operator"
	"github.com/ledgerline/finance-reports/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Report *ReportService
	Income *IncomeService
}

// NewService creates a new Service with the given storage and operator pool.
func NewService(store *storage.Storage, pool *operator.OperatorDelegator) *Service {
	return &Service{
		Report: NewReportService(store, pool),
		Income: NewIncomeService(store),
	}
}
