// Package income contains the Huma handlers for the income endpoints.
package income

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/report"
	"github.com/ledgerline/finance-reports/internal/service"
)

// GetSummaryInput is the Huma input for the income summary.
type GetSummaryInput struct {
	UserID string `query:"userID" required:"true" format:"uuid" doc:"User UUID"`
	Year   int    `query:"year" required:"true" minimum:"1" doc:"Calendar year"`
	Month  int    `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// Income is the API response model for an income record.
type Income struct {
	ID                 string  `json:"id" doc:"Income UUID"`
	Amount             float64 `json:"amount" doc:"Income amount"`
	Source             string  `json:"source" doc:"Where the income came from"`
	Date               string  `json:"date" doc:"Income date, YYYY-MM-DD"`
	IsRecurring        bool    `json:"isRecurring" doc:"True for recurring income"`
	RecurringFrequency string  `json:"recurringFrequency,omitempty" doc:"Recurrence interval, absent for one-off income"`
	Notes              string  `json:"notes,omitempty" doc:"Free-form notes"`
}

// SourceTotal is one entry of the per-source breakdown.
type SourceTotal struct {
	Source string  `json:"source"`
	Total  float64 `json:"total"`
	Count  int     `json:"count" doc:"Number of income records"`
}

// GetSummaryResponseBody is the response body for the income summary.
type GetSummaryResponseBody struct {
	Year            int           `json:"year"`
	Month           int           `json:"month"`
	Total           float64       `json:"total" doc:"Month total income"`
	IncomeCount     int           `json:"incomeCount" doc:"Number of income records in the month"`
	YearlyTotal     float64       `json:"yearlyTotal" doc:"Total income for the whole year"`
	SourceBreakdown []SourceTotal `json:"sourceBreakdown" doc:"Per-source totals, largest first"`
	RecentIncomes   []Income      `json:"recentIncomes" doc:"Five most recent records of the month"`
}

// GetSummaryOutput is the Huma output for the income summary.
type GetSummaryOutput struct {
	Body GetSummaryResponseBody
}

// summaryBuilder is the interface for building the income summary.
type summaryBuilder interface {
	MonthlySummary(ctx context.Context, userID uuid.UUID, year, month int) (*service.IncomeSummary, error)
}

// GetSummaryHandler handles GET /v1/incomes/summary.
type GetSummaryHandler struct {
	IncomeService summaryBuilder
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc summaryBuilder) *GetSummaryHandler {
	return &GetSummaryHandler{IncomeService: svc}
}

// Register registers the income summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-income-summary",
		Method:      http.MethodGet,
		Path:        "/v1/incomes/summary",
		Summary:     "Get income summary",
		Description: "Returns one month's income total, per-source breakdown, year-to-date total, and recent records.",
		Tags:        []string{"Incomes"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("incomeSummaryMs")
	}
	summary, err := h.IncomeService.MonthlySummary(ctx, userID, input.Year, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err)
	}

	if logData != nil {
		logData.AddData("incomeCount", summary.Count)
	}

	sources := make([]SourceTotal, len(summary.Sources))
	for i, source := range summary.Sources {
		sources[i] = SourceTotal{
			Source: source.Source,
			Total:  money(source.Total),
			Count:  source.Count,
		}
	}

	recent := make([]Income, len(summary.Recent))
	for i, row := range summary.Recent {
		recent[i] = Income{
			ID:                 row.ID.String(),
			Amount:             money(row.Amount),
			Source:             row.Source,
			Date:               row.Date.Format("2006-01-02"),
			IsRecurring:        row.IsRecurring,
			RecurringFrequency: row.RecurringFrequency,
			Notes:              row.Notes,
		}
	}

	resp := GetSummaryResponseBody{
		Year:            summary.Year,
		Month:           summary.Month,
		Total:           money(summary.Total),
		IncomeCount:     summary.Count,
		YearlyTotal:     money(summary.YearlyTotal),
		SourceBreakdown: sources,
		RecentIncomes:   recent,
	}

	return &GetSummaryOutput{Body: resp}, nil
}

func money(d decimal.Decimal) float64 {
	value, _ := d.Round(2).Float64()
	return value
}

func serviceError(err error) error {
	if errors.Is(err, report.ErrInvalidPeriod) {
		return huma.NewError(http.StatusBadRequest, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "failed to build income summary", err)
}

