package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/service"
)

// GetCategoryReportInput is the Huma input for the category report. When
// categoryID is present the response is the single-category drill-down;
// otherwise it covers every category with spend in the month.
type GetCategoryReportInput struct {
	UserID     string `query:"userID" required:"true" format:"uuid" doc:"User UUID"`
	Year       int    `query:"year" required:"true" minimum:"1" doc:"Calendar year"`
	Month      int    `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
	CategoryID string `query:"categoryID" format:"uuid" doc:"Category UUID, omit for the all-categories breakdown"`
}

// CategoryDetail is the single-category drill-down for a month.
type CategoryDetail struct {
	Category         *Category `json:"category" doc:"Category metadata, null when the category no longer exists"`
	Total            float64   `json:"total" doc:"Category total spend in the month"`
	ExpenseCount     int       `json:"expenseCount" doc:"Number of expenses"`
	Budget           *float64  `json:"budget" doc:"Category budget for the month, null when unset"`
	BudgetRemaining  *float64  `json:"budgetRemaining" doc:"Budget minus spend, null when no budget is set"`
	BudgetPercentage *int64    `json:"budgetPercentage" doc:"Spend as a whole percent of budget, null when no positive budget is set"`
	IsOverBudget     bool      `json:"isOverBudget" doc:"True when spend exceeds a positive budget"`
	Expenses         []Expense `json:"expenses" doc:"The category's expenses in the month, newest first"`
}

// CategoryBreakdownEntry is one category's spend, statistics, and budget
// standing within the month.
type CategoryBreakdownEntry struct {
	Category         Category `json:"category"`
	Total            float64  `json:"total"`
	Count            int      `json:"count"`
	Average          float64  `json:"average" doc:"Mean expense amount"`
	Min              float64  `json:"min" doc:"Smallest expense amount"`
	Max              float64  `json:"max" doc:"Largest expense amount"`
	Percentage       *float64 `json:"percentage" doc:"Share of the month's total spend, null when the month had no spend"`
	Budget           *float64 `json:"budget" doc:"Category budget for the month, null when unset"`
	BudgetRemaining  *float64 `json:"budgetRemaining" doc:"Budget minus spend, null when no budget is set"`
	BudgetPercentage *int64   `json:"budgetPercentage" doc:"Spend as a whole percent of budget, null when no positive budget is set"`
	IsOverBudget     bool     `json:"isOverBudget" doc:"True when spend exceeds a positive budget"`
}

// CategoryBreakdown is the all-categories view for a month, largest spend
// first.
type CategoryBreakdown struct {
	TotalExpenses float64                  `json:"totalExpenses" doc:"Month total spend across all categories"`
	CategoryCount int                      `json:"categoryCount" doc:"Number of categories with spend"`
	Categories    []CategoryBreakdownEntry `json:"categories"`
}

// GetCategoryReportResponseBody is the response body for the category
// report. Exactly one of Detail and Breakdown is set.
type GetCategoryReportResponseBody struct {
	Period    Period             `json:"period"`
	Detail    *CategoryDetail    `json:"detail,omitempty" doc:"Set when a categoryID was given"`
	Breakdown *CategoryBreakdown `json:"breakdown,omitempty" doc:"Set when no categoryID was given"`
}

// GetCategoryReportOutput is the Huma output for the category report.
type GetCategoryReportOutput struct {
	Body GetCategoryReportResponseBody
}

// categoryReportBuilder is the interface for building category reports.
type categoryReportBuilder interface {
	CategoryDetail(ctx context.Context, userID uuid.UUID, year, month int, categoryID uuid.UUID) (*service.CategoryDetailReport, error)
	CategoryBreakdown(ctx context.Context, userID uuid.UUID, year, month int) (*service.CategoryBreakdownReport, error)
}

// GetCategoryReportHandler handles GET /v1/reports/category.
type GetCategoryReportHandler struct {
	ReportService categoryReportBuilder
}

// NewGetCategoryReportHandler creates a new GetCategoryReportHandler.
func NewGetCategoryReportHandler(svc categoryReportBuilder) *GetCategoryReportHandler {
	return &GetCategoryReportHandler{ReportService: svc}
}

// Register registers the category report endpoint with the Huma API.
func (h *GetCategoryReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/category",
		Summary:     "Get category report",
		Description: "Returns a single category's drill-down for a month, or the per-category breakdown when no category is given.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetCategoryReportHandler) handle(ctx context.Context, input *GetCategoryReportInput) (*GetCategoryReportOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	if input.CategoryID != "" {
		categoryID, parseErr := uuid.FromString(input.CategoryID)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", parseErr)
		}
		return h.handleDetail(ctx, logData, userID, input.Year, input.Month, categoryID)
	}
	return h.handleBreakdown(ctx, logData, userID, input.Year, input.Month)
}

func (h *GetCategoryReportHandler) handleDetail(ctx context.Context, logData *logging.LogData, userID uuid.UUID, year, month int, categoryID uuid.UUID) (*GetCategoryReportOutput, error) {
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categoryDetailMs")
	}
	detail, err := h.ReportService.CategoryDetail(ctx, userID, year, month, categoryID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError("failed to build category report", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", detail.Count)
	}

	budget, remaining, percentage := budgetFields(detail.Budget)
	body := CategoryDetail{
		Total:            money(detail.Total),
		ExpenseCount:     detail.Count,
		Budget:           budget,
		BudgetRemaining:  remaining,
		BudgetPercentage: percentage,
		IsOverBudget:     detail.Budget.IsOverBudget,
		Expenses:         convertExpenses(detail.Expenses),
	}
	if detail.Category != nil {
		category := convertCategory(*detail.Category)
		body.Category = &category
	}

	return &GetCategoryReportOutput{Body: GetCategoryReportResponseBody{
		Period: Period{Year: year, Month: month},
		Detail: &body,
	}}, nil
}

func (h *GetCategoryReportHandler) handleBreakdown(ctx context.Context, logData *logging.LogData, userID uuid.UUID, year, month int) (*GetCategoryReportOutput, error) {
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categoryBreakdownMs")
	}
	breakdown, err := h.ReportService.CategoryBreakdown(ctx, userID, year, month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError("failed to build category report", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(breakdown.Categories))
	}

	entries := make([]CategoryBreakdownEntry, len(breakdown.Categories))
	for i, entry := range breakdown.Categories {
		budget, remaining, percentage := budgetFields(entry.Budget)
		entries[i] = CategoryBreakdownEntry{
			Category:         convertCategory(entry.Category),
			Total:            money(entry.Total),
			Count:            entry.Count,
			Average:          money(entry.Average),
			Min:              money(entry.Min),
			Max:              money(entry.Max),
			Percentage:       moneyPtr(entry.PercentOfTotal),
			Budget:           budget,
			BudgetRemaining:  remaining,
			BudgetPercentage: percentage,
			IsOverBudget:     entry.Budget.IsOverBudget,
		}
	}

	return &GetCategoryReportOutput{Body: GetCategoryReportResponseBody{
		Period: Period{Year: year, Month: month, MonthName: breakdown.MonthName},
		Breakdown: &CategoryBreakdown{
			TotalExpenses: money(breakdown.Total),
			CategoryCount: len(entries),
			Categories:    entries,
		},
	}}, nil
}
