package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/finance-reports/api"
	"github.com/ledgerline/finance-reports/internal/config"
	"github.com/ledgerline/finance-reports/internal/logging"
	"github.com/ledgerline/finance-reports/internal/operator"
	"github.com/ledgerline/finance-reports/internal/service"
	"github.com/ledgerline/finance-reports/internal/storage"
)

const reportWorkers = 4

func main() {
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("finance-reports starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	pool := operator.NewOperatorDelegator(dbStorage, reportWorkers)
	pool.Start()
	defer pool.Stop()

	svc := service.NewService(dbStorage, pool)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.ServerPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
