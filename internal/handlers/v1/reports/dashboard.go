package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/service"
)

// GetDashboardInput is the Huma input for the dashboard report.
type GetDashboardInput struct {
	UserID string `query:"userID" required:"true" format:"uuid" doc:"User UUID"`
}

// DashboardSummary carries the headline numbers for the current month.
// The budget fields are null when no overall budget is set for the month.
type DashboardSummary struct {
	MonthlyTotal     float64  `json:"monthlyTotal" doc:"Current month total spend"`
	MonthlyBudget    *float64 `json:"monthlyBudget" doc:"Overall budget for the month, null when unset"`
	BudgetRemaining  *float64 `json:"budgetRemaining" doc:"Budget minus spend, null when no budget is set"`
	BudgetPercentage *int64   `json:"budgetPercentage" doc:"Spend as a whole percent of budget, null when no positive budget is set"`
	TotalAllTime     float64  `json:"totalAllTime" doc:"All-time total spend"`
	ExpenseCount     int      `json:"expenseCount" doc:"Number of expenses in the current month"`
}

// GetDashboardResponseBody is the response body for the dashboard report.
type GetDashboardResponseBody struct {
	Summary            DashboardSummary    `json:"summary"`
	ExpensesByCategory []CategoryAggregate `json:"expensesByCategory" doc:"Current month spend per category, largest first"`
	MonthlyTrend       []MonthTotal        `json:"monthlyTrend" doc:"Trailing six months including the current one, oldest first"`
	RecentExpenses     []Expense           `json:"recentExpenses" doc:"Five most recent expenses across all time"`
}

// GetDashboardOutput is the Huma output for the dashboard report.
type GetDashboardOutput struct {
	Body GetDashboardResponseBody
}

// dashboardBuilder is the interface for building the dashboard report.
type dashboardBuilder interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*service.DashboardReport, error)
}

// GetDashboardHandler handles GET /v1/reports/dashboard.
type GetDashboardHandler struct {
	ReportService dashboardBuilder
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardBuilder) *GetDashboardHandler {
	return &GetDashboardHandler{ReportService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/dashboard",
		Summary:     "Get dashboard report",
		Description: "Returns the current month summary, per-category breakdown, six month trend, and recent expenses.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardMs")
	}
	dashboard, err := h.ReportService.Dashboard(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError("failed to build dashboard report", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", dashboard.MonthAggregate.Count)
	}

	budget, remaining, percentage := budgetFields(dashboard.Budget)
	resp := GetDashboardResponseBody{
		Summary: DashboardSummary{
			MonthlyTotal:     money(dashboard.MonthAggregate.Total),
			MonthlyBudget:    budget,
			BudgetRemaining:  remaining,
			BudgetPercentage: percentage,
			TotalAllTime:     money(dashboard.AllTimeTotal),
			ExpenseCount:     dashboard.MonthAggregate.Count,
		},
		ExpensesByCategory: convertCategoryAggregates(dashboard.MonthAggregate.ByCategory),
		MonthlyTrend:       convertTrend(dashboard.Trend),
		RecentExpenses:     convertExpenses(dashboard.RecentExpenses),
	}

	return &GetDashboardOutput{Body: resp}, nil
}
