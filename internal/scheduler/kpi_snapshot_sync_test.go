package scheduler

import (
	"testing"
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(ctrl *gomock.Controller) (*KpiSnapshotSyncService, *mocks.MockSaleRepository, *mocks.MockKpiRepository, *mocks.MockDailySaleRepository) {
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	kpiRepo := mocks.NewMockKpiRepository(ctrl)
	dailySaleRepo := mocks.NewMockDailySaleRepository(ctrl)

	service := &KpiSnapshotSyncService{
		saleRepo:      saleRepo,
		kpiRepo:       kpiRepo,
		dailySaleRepo: dailySaleRepo,
	}

	return service, saleRepo, kpiRepo, dailySaleRepo
}

func TestKpiSnapshotSyncService_consolidatePeriod(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(saleRepo *mocks.MockSaleRepository, kpiRepo *mocks.MockKpiRepository, dailySaleRepo *mocks.MockDailySaleRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Período com vendas deve gerar snapshot com ticket médio calculado",
			setup: func(saleRepo *mocks.MockSaleRepository, kpiRepo *mocks.MockKpiRepository, dailySaleRepo *mocks.MockDailySaleRepository) {
				saleRepo.EXPECT().GetPeriodTotals("2025-06").Return(&domain.PeriodSalesTotals{
					TotalSold:    12000,
					SalesCount:   40,
					TotalClients: 35,
					NewClients:   12,
				}, nil)

				kpiRepo.EXPECT().GetByPeriod("2025-06").Return(nil, nil)

				kpiRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.KpiSnapshot) error {
					assert.Equal(t, "2025-06", snapshot.Period)
					assert.Equal(t, 12000.0, snapshot.TotalSold)
					assert.Equal(t, 300.0, snapshot.AverageTicket)
					assert.Equal(t, 0.0, snapshot.TotalGoal)
					return nil
				})

				saleRepo.EXPECT().GetDailyTotalsByPeriod("2025-06").Return([]*domain.DailySale{
					{Period: "2025-06", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Amount: 500},
					{Period: "2025-06", Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Amount: 700},
				}, nil)

				dailySaleRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Meta definida manualmente deve ser preservada na reconsolidação",
			setup: func(saleRepo *mocks.MockSaleRepository, kpiRepo *mocks.MockKpiRepository, dailySaleRepo *mocks.MockDailySaleRepository) {
				saleRepo.EXPECT().GetPeriodTotals("2025-06").Return(&domain.PeriodSalesTotals{
					TotalSold:  8000,
					SalesCount: 10,
				}, nil)

				kpiRepo.EXPECT().GetByPeriod("2025-06").Return(&domain.KpiSnapshot{
					Period:    "2025-06",
					TotalGoal: 50000,
				}, nil)

				kpiRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.KpiSnapshot) error {
					assert.Equal(t, 50000.0, snapshot.TotalGoal)
					assert.Equal(t, 8000.0, snapshot.TotalSold)
					return nil
				})

				saleRepo.EXPECT().GetDailyTotalsByPeriod("2025-06").Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Período sem vendas deve ser ignorado sem tocar no snapshot",
			setup: func(saleRepo *mocks.MockSaleRepository, kpiRepo *mocks.MockKpiRepository, dailySaleRepo *mocks.MockDailySaleRepository) {
				saleRepo.EXPECT().GetPeriodTotals("2025-06").Return(&domain.PeriodSalesTotals{}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha na agregação deve propagar o erro",
			setup: func(saleRepo *mocks.MockSaleRepository, kpiRepo *mocks.MockKpiRepository, dailySaleRepo *mocks.MockDailySaleRepository) {
				saleRepo.EXPECT().GetPeriodTotals("2025-06").Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, saleRepo, kpiRepo, dailySaleRepo := newTestSyncService(ctrl)
			tt.setup(saleRepo, kpiRepo, dailySaleRepo)

			tt.validate(t, service.consolidatePeriod("2025-06"))
		})
	}
}

func TestKpiSnapshotSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestSyncService(ctrl)
	service.config = KpiSnapshotSyncConfig{CronSchedule: "0 5 * * *", SyncEnabled: true}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}
