package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/internal/config"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// KpiSnapshotSyncConfig representa a configuração do agendador de consolidação de KPIs
type KpiSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// KpiSnapshotSyncService reconsolida o snapshot de KPIs e as linhas de vendas
// diárias do período corrente e do anterior a partir das vendas lançadas.
// A meta do período (total_goal) é definida manualmente e preservada na
// reconsolidação.
type KpiSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              KpiSnapshotSyncConfig
	saleRepo            repository.SaleRepository
	kpiRepo             repository.KpiRepository
	dailySaleRepo       repository.DailySaleRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewKpiSnapshotSyncService cria uma nova instância do serviço de consolidação de KPIs
func NewKpiSnapshotSyncService(
	saleRepo repository.SaleRepository,
	kpiRepo repository.KpiRepository,
	dailySaleRepo repository.DailySaleRepository,
	appConfig *config.Config,
) *KpiSnapshotSyncService {
	// Criar a configuração com base na config global
	syncConfig := KpiSnapshotSyncConfig{
		CronSchedule: appConfig.KpiSnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.KpiSnapshotSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de consolidação de KPIs carregada")

	return &KpiSnapshotSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		saleRepo:      saleRepo,
		kpiRepo:       kpiRepo,
		dailySaleRepo: dailySaleRepo,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *KpiSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação de KPIs desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncKpiSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de KPIs: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// syncKpiSnapshots reconsolida o período corrente e o anterior. O período
// anterior entra para capturar vendas lançadas com atraso na virada do mês.
func (s *KpiSnapshotSyncService) syncKpiSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de KPIs já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	currentPeriod := utils.CurrentPeriod()
	periods := []string{currentPeriod, utils.PreviousPeriod(currentPeriod)}

	logrus.WithField("periods", periods).Info("Iniciando consolidação de KPIs")

	for _, period := range periods {
		if err := s.consolidatePeriod(period); err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao consolidar período")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"periods":  len(periods),
	}).Info("Consolidação de KPIs concluída")

	s.lastSyncCompletedAt = time.Now()
}

// consolidatePeriod recalcula o snapshot de KPIs e as linhas diárias de um período
func (s *KpiSnapshotSyncService) consolidatePeriod(period string) error {
	totals, err := s.saleRepo.GetPeriodTotals(period)
	if err != nil {
		return fmt.Errorf("erro ao agregar vendas do período: %w", err)
	}

	if totals == nil || totals.SalesCount == 0 {
		logrus.WithField("period", period).Info("Nenhuma venda lançada no período, consolidação ignorada")
		return nil
	}

	snapshot := &domain.KpiSnapshot{
		Period:        period,
		TotalSold:     totals.TotalSold,
		TotalClients:  totals.TotalClients,
		NewClients:    totals.NewClients,
		AverageTicket: domain.AverageTicket(totals.TotalSold, totals.SalesCount),
	}

	// Preservar a meta definida manualmente no snapshot existente
	existing, err := s.kpiRepo.GetByPeriod(period)
	if err != nil {
		return fmt.Errorf("erro ao buscar snapshot existente: %w", err)
	}
	if existing != nil {
		snapshot.TotalGoal = existing.TotalGoal
	}

	if err := s.kpiRepo.SaveOrUpdate(snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot de KPIs: %w", err)
	}

	if err := s.consolidateDailySales(period); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"period":      period,
		"total_sold":  snapshot.TotalSold,
		"sales_count": totals.SalesCount,
	}).Info("Snapshot de KPIs consolidado com sucesso")

	return nil
}

// consolidateDailySales recalcula as linhas diárias do período a partir das vendas
func (s *KpiSnapshotSyncService) consolidateDailySales(period string) error {
	dailyTotals, err := s.saleRepo.GetDailyTotalsByPeriod(period)
	if err != nil {
		return fmt.Errorf("erro ao agregar vendas diárias: %w", err)
	}

	for _, daily := range dailyTotals {
		if err := s.dailySaleRepo.SaveOrUpdate(daily); err != nil {
			return fmt.Errorf("erro ao salvar venda diária de %s: %w", daily.Date.Format(time.DateOnly), err)
		}
	}

	return nil
}

// TriggerManualSync inicia manualmente uma consolidação de KPIs
func (s *KpiSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de KPIs já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de KPIs")
	go s.syncKpiSnapshots()
}

// GetStatus retorna o status atual da consolidação
func (s *KpiSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
