package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/finance-reports/internal/handlers/v1/income"
	"github.com/ledgerline/finance-reports/internal/handlers/v1/reports"
	"github.com/ledgerline/finance-reports/internal/handlers/v1/status"
	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-reports", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	reports.NewGetDashboardHandler(r.Service.Report).Register(humaAPI)
	reports.NewGetMonthlyReportHandler(r.Service.Report).Register(humaAPI)
	reports.NewGetWeeklyReportHandler(r.Service.Report).Register(humaAPI)
	reports.NewGetYearlyReportHandler(r.Service.Report).Register(humaAPI)
	reports.NewGetCategoryReportHandler(r.Service.Report).Register(humaAPI)
	income.NewGetSummaryHandler(r.Service.Income).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
