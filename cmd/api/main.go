package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/database/postgres"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/storage"
	"github.com/Wall-AR/sales-pulse-api/internal/api"
	"github.com/Wall-AR/sales-pulse-api/internal/config"
	"github.com/Wall-AR/sales-pulse-api/internal/scheduler"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/authenticating"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/billing"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/kpis"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/ranking"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/reporting"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/sellers"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/selling"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	sellerRepo := repository.NewSellerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	kpiRepo := repository.NewKpiRepository(pgConn)
	dailySaleRepo := repository.NewDailySaleRepository(pgConn)
	billingRepo := repository.NewBillingRepository(pgConn)
	auditRepo := repository.NewAuditLogRepository(pgConn)

	avatarStorage, err := storage.NewS3AvatarStorage(cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o storage de fotos")
	}

	authenticator := authenticating.NewService(userRepo, cfg)
	reporter := reporting.NewService(kpiRepo, saleRepo, dailySaleRepo)
	ranker := ranking.NewService(sellerRepo, saleRepo, reporter)
	sellerService := sellers.NewService(sellerRepo, auditRepo, avatarStorage)
	saleService := selling.NewService(saleRepo, sellerRepo, auditRepo)
	billingService := billing.NewService(billingRepo, auditRepo)
	kpiService := kpis.NewService(kpiRepo, auditRepo)

	// Inicializa o agendador de consolidação de KPIs
	kpiSyncService := scheduler.NewKpiSnapshotSyncService(
		saleRepo,
		kpiRepo,
		dailySaleRepo,
		cfg,
	)

	if err := kpiSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de KPIs")
	} else {
		logrus.Info("Agendador de consolidação de KPIs iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		reporter,
		ranker,
		sellerService,
		saleService,
		billingService,
		kpiService,
		kpiSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
