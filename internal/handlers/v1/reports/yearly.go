package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/service"
)

// GetYearlyReportInput is the Huma input for the yearly report.
type GetYearlyReportInput struct {
	UserID string `query:"userID" required:"true" format:"uuid" doc:"User UUID"`
	Year   int    `path:"year" minimum:"1" doc:"Calendar year"`
}

// YearMonthTotal is one month of the yearly breakdown. Every month of the
// year appears, zero-filled where nothing was spent.
type YearMonthTotal struct {
	Month int     `json:"month" doc:"Calendar month, 1-12"`
	Total float64 `json:"total"`
	Count int     `json:"count" doc:"Number of expenses in the month"`
}

// GetYearlyReportResponseBody is the response body for the yearly report.
type GetYearlyReportResponseBody struct {
	Year             int                 `json:"year"`
	Total            float64             `json:"total" doc:"Year total spend"`
	MonthlyBreakdown []YearMonthTotal    `json:"monthlyBreakdown" doc:"Twelve entries, January first"`
	ByCategory       []CategoryAggregate `json:"byCategory" doc:"Spend per category, largest first"`
}

// GetYearlyReportOutput is the Huma output for the yearly report.
type GetYearlyReportOutput struct {
	Body GetYearlyReportResponseBody
}

// yearlyReportBuilder is the interface for building the yearly report.
type yearlyReportBuilder interface {
	Yearly(ctx context.Context, userID uuid.UUID, year int) (*service.YearlyReport, error)
}

// GetYearlyReportHandler handles GET /v1/reports/yearly/{year}.
type GetYearlyReportHandler struct {
	ReportService yearlyReportBuilder
}

// NewGetYearlyReportHandler creates a new GetYearlyReportHandler.
func NewGetYearlyReportHandler(svc yearlyReportBuilder) *GetYearlyReportHandler {
	return &GetYearlyReportHandler{ReportService: svc}
}

// Register registers the yearly report endpoint with the Huma API.
func (h *GetYearlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-yearly-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/yearly/{year}",
		Summary:     "Get yearly report",
		Description: "Returns one calendar year's total, a dense twelve month breakdown, and the per-category breakdown.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetYearlyReportHandler) handle(ctx context.Context, input *GetYearlyReportInput) (*GetYearlyReportOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("yearlyReportMs")
	}
	yearly, err := h.ReportService.Yearly(ctx, userID, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError("failed to build yearly report", err)
	}

	months := make([]YearMonthTotal, len(yearly.Months))
	for i, entry := range yearly.Months {
		months[i] = YearMonthTotal{Month: entry.Month, Total: money(entry.Total), Count: entry.Count}
	}

	resp := GetYearlyReportResponseBody{
		Year:             yearly.Year,
		Total:            money(yearly.Total),
		MonthlyBreakdown: months,
		ByCategory:       convertCategoryAggregates(yearly.ByCategory),
	}

	return &GetYearlyReportOutput{Body: resp}, nil
}
