package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/wallet-server/api"
	"github.com/carson-networks/wallet-server/internal/config"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/operator"
	"github.com/carson-networks/wallet-server/internal/service"
	"github.com/carson-networks/wallet-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("wallet-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
