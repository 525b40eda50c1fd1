package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wall-AR/sales-pulse-api/internal/api/handler"
	"github.com/Wall-AR/sales-pulse-api/internal/api/handler/router"
	"github.com/Wall-AR/sales-pulse-api/internal/config"
	"github.com/Wall-AR/sales-pulse-api/internal/scheduler"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/authenticating"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/billing"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/kpis"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/ranking"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/reporting"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/sellers"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/selling"
	"github.com/Wall-AR/sales-pulse-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	reporter reporting.Reporter,
	ranker ranking.Ranker,
	sellerService sellers.SellerManager,
	saleService selling.SaleManager,
	billingService billing.BillingManager,
	kpiService kpis.KpiManager,
	kpiSyncService *scheduler.KpiSnapshotSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		KpiSnapshotSyncService: kpiSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Sellers(sellerService)...),
		router.WithRoutes(handler.Sales(saleService)...),
		router.WithRoutes(handler.Dashboard(reporter, ranker)...),
		router.WithRoutes(handler.Billing(billingService)...),
		router.WithRoutes(handler.Kpis(kpiService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
