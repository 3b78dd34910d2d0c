package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/account"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/category"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/status"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/user"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/operator"
	"github.com/carson-networks/wallet-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("wallet-server", "1.0.0"))
	r.registerHandlers(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.Middleware(r.Logger, mux),
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

func (r *Rest) registerHandlers(humaAPI huma.API) {
	user.NewCreateUserHandler(r.Operator).Register(humaAPI)

	account.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewRenameAccountHandler(r.Operator).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewTransferHandler(r.Operator).Register(humaAPI)
}
