package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/service"
)

// GetMonthlyReportInput is the Huma input for the monthly report.
type GetMonthlyReportInput struct {
	UserID string `query:"userID" required:"true" format:"uuid" doc:"User UUID"`
	Year   int    `path:"year" minimum:"1" doc:"Calendar year"`
	Month  int    `path:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// MonthComparison relates the month's spend to the immediately preceding
// month. ChangePercentage is null when the previous month had no spend.
type MonthComparison struct {
	PreviousMonth    float64  `json:"previousMonth" doc:"Previous month total spend"`
	Change           float64  `json:"change" doc:"This month minus previous month"`
	ChangePercentage *float64 `json:"changePercentage" doc:"Change as a percent of the previous month, null when it had no spend"`
}

// GetMonthlyReportResponseBody is the response body for the monthly report.
type GetMonthlyReportResponseBody struct {
	Period           Period              `json:"period"`
	Total            float64             `json:"total" doc:"Month total spend"`
	ExpenseCount     int                 `json:"expenseCount" doc:"Number of expenses in the month"`
	Budget           *float64            `json:"budget" doc:"Overall budget for the month, null when unset"`
	BudgetRemaining  *float64            `json:"budgetRemaining" doc:"Budget minus spend, null when no budget is set"`
	BudgetPercentage *int64              `json:"budgetPercentage" doc:"Spend as a whole percent of budget, null when no positive budget is set"`
	Comparison       MonthComparison     `json:"comparison"`
	ByCategory       []CategoryAggregate `json:"byCategory" doc:"Spend per category, largest first"`
	DailyBreakdown   []DayTotal          `json:"dailyBreakdown" doc:"Per-day totals, days without spend omitted"`
}

// GetMonthlyReportOutput is the Huma output for the monthly report.
type GetMonthlyReportOutput struct {
	Body GetMonthlyReportResponseBody
}

// monthlyReportBuilder is the interface for building the monthly report.
type monthlyReportBuilder interface {
	Monthly(ctx context.Context, userID uuid.UUID, year, month int) (*service.MonthlyReport, error)
}

// GetMonthlyReportHandler handles GET /v1/reports/monthly/{year}/{month}.
type GetMonthlyReportHandler struct {
	ReportService monthlyReportBuilder
}

// NewGetMonthlyReportHandler creates a new GetMonthlyReportHandler.
func NewGetMonthlyReportHandler(svc monthlyReportBuilder) *GetMonthlyReportHandler {
	return &GetMonthlyReportHandler{ReportService: svc}
}

// Register registers the monthly report endpoint with the Huma API.
func (h *GetMonthlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/monthly/{year}/{month}",
		Summary:     "Get monthly report",
		Description: "Returns one calendar month's totals, budget standing, previous month comparison, category and daily breakdowns.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetMonthlyReportHandler) handle(ctx context.Context, input *GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlyReportMs")
	}
	monthly, err := h.ReportService.Monthly(ctx, userID, input.Year, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError("failed to build monthly report", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", monthly.Aggregate.Count)
	}

	budget, remaining, percentage := budgetFields(monthly.Budget)
	resp := GetMonthlyReportResponseBody{
		Period: Period{
			Year:      monthly.Year,
			Month:     monthly.Month,
			MonthName: monthly.MonthName,
		},
		Total:            money(monthly.Aggregate.Total),
		ExpenseCount:     monthly.Aggregate.Count,
		Budget:           budget,
		BudgetRemaining:  remaining,
		BudgetPercentage: percentage,
		Comparison: MonthComparison{
			PreviousMonth:    money(monthly.Comparison.PreviousTotal),
			Change:           money(monthly.Comparison.Delta),
			ChangePercentage: moneyPtr(monthly.Comparison.DeltaPercent),
		},
		ByCategory:     convertCategoryAggregates(monthly.Aggregate.ByCategory),
		DailyBreakdown: convertDays(monthly.Daily),
	}

	return &GetMonthlyReportOutput{Body: resp}, nil
}
