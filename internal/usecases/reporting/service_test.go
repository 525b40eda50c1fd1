package reporting

import (
	"testing"
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_ResolveActivePeriod(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		setup    func(kpiRepo *mocks.MockKpiRepository, saleRepo *mocks.MockSaleRepository)
		expected string
	}{
		{
			name:     "Período explícito tem prioridade e dispensa consultas",
			explicit: "2025-03",
			setup:    func(kpiRepo *mocks.MockKpiRepository, saleRepo *mocks.MockSaleRepository) {},
			expected: "2025-03",
		},
		{
			name:     "Sem período explícito usa o snapshot de KPI mais recente",
			explicit: "",
			setup: func(kpiRepo *mocks.MockKpiRepository, saleRepo *mocks.MockSaleRepository) {
				kpiRepo.EXPECT().GetLatestPeriod().Return("2025-02", nil)
			},
			expected: "2025-02",
		},
		{
			name:     "Sem snapshot de KPI usa o período de vendas mais recente",
			explicit: "",
			setup: func(kpiRepo *mocks.MockKpiRepository, saleRepo *mocks.MockSaleRepository) {
				kpiRepo.EXPECT().GetLatestPeriod().Return("", nil)
				saleRepo.EXPECT().GetLatestPeriod().Return("2025-01", nil)
			},
			expected: "2025-01",
		},
		{
			name:     "Banco vazio retorna string vazia e nunca erro",
			explicit: "",
			setup: func(kpiRepo *mocks.MockKpiRepository, saleRepo *mocks.MockSaleRepository) {
				kpiRepo.EXPECT().GetLatestPeriod().Return("", nil)
				saleRepo.EXPECT().GetLatestPeriod().Return("", nil)
			},
			expected: "",
		},
		{
			name:     "Falha na consulta de KPIs cai para o período de vendas",
			explicit: "",
			setup: func(kpiRepo *mocks.MockKpiRepository, saleRepo *mocks.MockSaleRepository) {
				kpiRepo.EXPECT().GetLatestPeriod().Return("", assert.AnError)
				saleRepo.EXPECT().GetLatestPeriod().Return("2024-12", nil)
			},
			expected: "2024-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			kpiRepo := mocks.NewMockKpiRepository(ctrl)
			saleRepo := mocks.NewMockSaleRepository(ctrl)
			tt.setup(kpiRepo, saleRepo)

			service := &Service{kpiRepo: kpiRepo, saleRepo: saleRepo}

			assert.Equal(t, tt.expected, service.ResolveActivePeriod(tt.explicit))
		})
	}
}

func TestService_GetKpiSnapshot(t *testing.T) {
	t.Run("Snapshot encontrado deve voltar com as métricas derivadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kpiRepo := mocks.NewMockKpiRepository(ctrl)
		kpiRepo.EXPECT().GetByPeriod("2025-05").Return(&domain.KpiSnapshot{
			Period:       "2025-05",
			TotalSold:    15000,
			TotalGoal:    10000,
			TotalClients: 40,
			NewClients:   25,
		}, nil)

		service := &Service{kpiRepo: kpiRepo}

		view := service.GetKpiSnapshot("2025-05")

		assert.NotNil(t, view)
		assert.Equal(t, "2025-05", view.Period)
		assert.NotNil(t, view.GoalPercent)
		assert.Equal(t, 150.0, *view.GoalPercent)
		assert.Equal(t, 100.0, view.GoalProgress)
		assert.Equal(t, 15, view.ReturningClients)
	})

	t.Run("Falha de leitura deve ser engolida e retornar nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kpiRepo := mocks.NewMockKpiRepository(ctrl)
		kpiRepo.EXPECT().GetByPeriod("2025-05").Return(nil, assert.AnError)

		service := &Service{kpiRepo: kpiRepo}

		assert.Nil(t, service.GetKpiSnapshot("2025-05"))
	})

	t.Run("Banco vazio deve retornar nil sem consultar snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kpiRepo := mocks.NewMockKpiRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		kpiRepo.EXPECT().GetLatestPeriod().Return("", nil)
		saleRepo.EXPECT().GetLatestPeriod().Return("", nil)

		service := &Service{kpiRepo: kpiRepo, saleRepo: saleRepo}

		assert.Nil(t, service.GetKpiSnapshot(""))
	})
}

func TestService_GetDailySeries(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("Série do período deve vir alinhada com a do período anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dailySaleRepo := mocks.NewMockDailySaleRepository(ctrl)
		dailySaleRepo.EXPECT().ListByPeriod("2025-06").Return([]*domain.DailySale{
			{Period: "2025-06", Date: day(1), Amount: 500},
		}, nil)
		dailySaleRepo.EXPECT().ListByPeriod("2025-05").Return([]*domain.DailySale{
			{Period: "2025-05", Date: day(2), Amount: 300},
		}, nil)

		service := &Service{dailySaleRepo: dailySaleRepo}

		response := service.GetDailySeries("2025-06")

		assert.NotNil(t, response)
		assert.Equal(t, "2025-06", response.Period)
		assert.Equal(t, "2025-05", response.PreviousPeriod)
		assert.Len(t, response.Series, 2)
	})

	t.Run("Falha na série anterior não derruba a série atual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dailySaleRepo := mocks.NewMockDailySaleRepository(ctrl)
		dailySaleRepo.EXPECT().ListByPeriod("2025-06").Return([]*domain.DailySale{
			{Period: "2025-06", Date: day(10), Amount: 700},
		}, nil)
		dailySaleRepo.EXPECT().ListByPeriod("2025-05").Return(nil, assert.AnError)

		service := &Service{dailySaleRepo: dailySaleRepo}

		response := service.GetDailySeries("2025-06")

		assert.NotNil(t, response)
		assert.Len(t, response.Series, 1)
		assert.Equal(t, "10", response.Series[0].Day)
		assert.Nil(t, response.Series[0].Previous)
	})
}

func TestService_GetAvailablePeriods(t *testing.T) {
	t.Run("Deve unir períodos de KPIs e vendas sem duplicar, do mais recente para o mais antigo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kpiRepo := mocks.NewMockKpiRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		kpiRepo.EXPECT().ListPeriods().Return([]string{"2025-01", "2024-12"}, nil)
		saleRepo.EXPECT().ListPeriods().Return([]string{"2025-02", "2025-01"}, nil)

		service := &Service{kpiRepo: kpiRepo, saleRepo: saleRepo}

		result := service.GetAvailablePeriods()

		assert.Equal(t, []string{"2025-02", "2025-01", "2024-12"}, result.Periods)
		assert.Equal(t, []string{"2025", "2024"}, result.Years)
		assert.Equal(t, []string{"01", "02", "12"}, result.Months)
	})

	t.Run("Falhas nas duas fontes retornam listas vazias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kpiRepo := mocks.NewMockKpiRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		kpiRepo.EXPECT().ListPeriods().Return(nil, assert.AnError)
		saleRepo.EXPECT().ListPeriods().Return(nil, assert.AnError)

		service := &Service{kpiRepo: kpiRepo, saleRepo: saleRepo}

		result := service.GetAvailablePeriods()

		assert.Empty(t, result.Periods)
		assert.Empty(t, result.Years)
		assert.Empty(t, result.Months)
	})
}
