package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ledgerline/finance-reports/internal/report"
	"github.com/ledgerline/finance-reports/internal/service"
)

type mockMonthlyReportBuilder struct {
	mock.Mock
}

func (m *mockMonthlyReportBuilder) Monthly(ctx context.Context, userID uuid.UUID, year, month int) (*service.MonthlyReport, error) {
	args := m.Called(ctx, userID, year, month)
	monthly, _ := args.Get(0).(*service.MonthlyReport)
	return monthly, args.Error(1)
}

func newMonthlyTestAPI(t *testing.T, svc monthlyReportBuilder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetMonthlyReportHandler(svc).Register(api)
	return api
}

func TestHTTP_GetMonthlyReport(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	deltaPercent := decimal.RequireFromString("50")

	mockSvc := new(mockMonthlyReportBuilder)
	mockSvc.On("Monthly", mock.Anything, userID, 2026, 1).Return(&service.MonthlyReport{
		Year:      2026,
		Month:     1,
		MonthName: "January",
		Aggregate: report.Aggregate{
			Total:      decimal.RequireFromString("150.00"),
			Count:      2,
			ByCategory: []report.CategoryAggregate{},
		},
		Comparison: service.MonthComparison{
			PreviousTotal: decimal.RequireFromString("100.00"),
			Delta:         decimal.RequireFromString("50.00"),
			DeltaPercent:  &deltaPercent,
		},
	}, nil)

	resp := newMonthlyTestAPI(t, mockSvc).Get(
		fmt.Sprintf("/v1/reports/monthly/2026/1?userID=%s", userID),
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetMonthlyReportResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 2026, body.Period.Year)
	assert.Equal(t, 1, body.Period.Month)
	assert.Equal(t, "January", body.Period.MonthName)
	assert.Equal(t, 150.0, body.Total)
	assert.Equal(t, 2, body.ExpenseCount)
	assert.Nil(t, body.Budget)
	assert.Equal(t, 100.0, body.Comparison.PreviousMonth)
	assert.Equal(t, 50.0, body.Comparison.Change)
	assert.NotNil(t, body.Comparison.ChangePercentage)
	assert.Equal(t, 50.0, *body.Comparison.ChangePercentage)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetMonthlyReport_NoPreviousSpend(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockMonthlyReportBuilder)
	mockSvc.On("Monthly", mock.Anything, userID, 2026, 1).Return(&service.MonthlyReport{
		Year:      2026,
		Month:     1,
		MonthName: "January",
		Aggregate: report.Aggregate{
			Total:      decimal.RequireFromString("150.00"),
			Count:      1,
			ByCategory: []report.CategoryAggregate{},
		},
		Comparison: service.MonthComparison{
			Delta: decimal.RequireFromString("150.00"),
		},
	}, nil)

	resp := newMonthlyTestAPI(t, mockSvc).Get(
		fmt.Sprintf("/v1/reports/monthly/2026/1?userID=%s", userID),
	)

	assert.Equal(t, http.StatusOK, resp.Code)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	var comparison map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw["comparison"], &comparison))
	assert.Equal(t, "null", string(comparison["changePercentage"]))
}

func TestHTTP_GetMonthlyReport_MonthOutOfRange(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockMonthlyReportBuilder)

	resp := newMonthlyTestAPI(t, mockSvc).Get(
		fmt.Sprintf("/v1/reports/monthly/2026/13?userID=%s", userID),
	)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Monthly")
}
