package reports

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/service"
)

// GetWeeklyReportInput is the Huma input for the weekly report.
type GetWeeklyReportInput struct {
	UserID    string `query:"userID" required:"true" format:"uuid" doc:"User UUID"`
	StartDate string `query:"startDate" format:"date" doc:"Any date inside the wanted week, YYYY-MM-DD; defaults to today"`
}

// WeekPeriod bounds the reported week. The end date is exclusive, always the
// following Monday.
type WeekPeriod struct {
	StartDate string `json:"startDate" doc:"Monday the week starts on, YYYY-MM-DD"`
	EndDate   string `json:"endDate" doc:"Exclusive end, the following Monday, YYYY-MM-DD"`
}

// GetWeeklyReportResponseBody is the response body for the weekly report.
type GetWeeklyReportResponseBody struct {
	Period         WeekPeriod          `json:"period"`
	Total          float64             `json:"total" doc:"Week total spend"`
	ExpenseCount   int                 `json:"expenseCount" doc:"Number of expenses in the week"`
	ByCategory     []CategoryAggregate `json:"byCategory" doc:"Spend per category, largest first"`
	DailyBreakdown []DayTotal          `json:"dailyBreakdown" doc:"Per-day totals, days without spend omitted"`
}

// GetWeeklyReportOutput is the Huma output for the weekly report.
type GetWeeklyReportOutput struct {
	Body GetWeeklyReportResponseBody
}

// weeklyReportBuilder is the interface for building the weekly report.
type weeklyReportBuilder interface {
	Weekly(ctx context.Context, userID uuid.UUID, anchor *time.Time) (*service.WeeklyReport, error)
}

// GetWeeklyReportHandler handles GET /v1/reports/weekly.
type GetWeeklyReportHandler struct {
	ReportService weeklyReportBuilder
}

// NewGetWeeklyReportHandler creates a new GetWeeklyReportHandler.
func NewGetWeeklyReportHandler(svc weeklyReportBuilder) *GetWeeklyReportHandler {
	return &GetWeeklyReportHandler{ReportService: svc}
}

// Register registers the weekly report endpoint with the Huma API.
func (h *GetWeeklyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-weekly-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/weekly",
		Summary:     "Get weekly report",
		Description: "Returns totals and breakdowns for the Monday-to-Monday week containing the anchor date.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetWeeklyReportHandler) handle(ctx context.Context, input *GetWeeklyReportInput) (*GetWeeklyReportOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var anchor *time.Time
	if input.StartDate != "" {
		parsed, parseErr := time.Parse("2006-01-02", input.StartDate)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", parseErr)
		}
		anchor = &parsed
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("weeklyReportMs")
	}
	weekly, err := h.ReportService.Weekly(ctx, userID, anchor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError("failed to build weekly report", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", weekly.Aggregate.Count)
	}

	resp := GetWeeklyReportResponseBody{
		Period: WeekPeriod{
			StartDate: dateString(weekly.Period.Start),
			EndDate:   dateString(weekly.Period.End),
		},
		Total:          money(weekly.Aggregate.Total),
		ExpenseCount:   weekly.Aggregate.Count,
		ByCategory:     convertCategoryAggregates(weekly.Aggregate.ByCategory),
		DailyBreakdown: convertDays(weekly.Daily),
	}

	return &GetWeeklyReportOutput{Body: resp}, nil
}
