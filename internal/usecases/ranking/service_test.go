package ranking

import (
	"testing"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/reporting"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockSellerRepository, *mocks.MockSaleRepository, *mocks.MockKpiRepository) {
	sellerRepo := mocks.NewMockSellerRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	kpiRepo := mocks.NewMockKpiRepository(ctrl)
	dailySaleRepo := mocks.NewMockDailySaleRepository(ctrl)

	reporter := reporting.NewService(kpiRepo, saleRepo, dailySaleRepo)

	service := &Service{
		sellerRepo: sellerRepo,
		saleRepo:   saleRepo,
		reporter:   reporter,
	}

	return service, sellerRepo, saleRepo, kpiRepo
}

func TestService_GetSellerRanking(t *testing.T) {
	t.Run("Deve ordenar vendedores pelo total do período com variação sobre o anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, saleRepo, _ := newTestService(ctrl)

		sellerRepo.EXPECT().ListSellers().Return([]*domain.Seller{
			{ID: "S1", Name: "Ana"},
			{ID: "S2", Name: "Bruno"},
			{ID: "S3", Name: "Carla"},
		}, nil)

		saleRepo.EXPECT().GetSellerTotalsByPeriod("2025-06").Return(map[string]*domain.SellerSalesTotals{
			"S1": {TotalAmount: 1000, SalesCount: 4},
			"S2": {TotalAmount: 3000, SalesCount: 6},
		}, nil)

		saleRepo.EXPECT().GetSellerTotalsByPeriod("2025-05").Return(map[string]*domain.SellerSalesTotals{
			"S1": {TotalAmount: 2000, SalesCount: 5},
		}, nil)

		response := service.GetSellerRanking("2025-06")

		assert.Equal(t, "2025-06", response.Period)
		assert.Equal(t, "2025-05", response.PreviousPeriod)
		assert.Len(t, response.Ranking, 3)

		// Bruno lidera: sem vendas no período anterior, variação infinita
		bruno := response.Ranking[0]
		assert.Equal(t, "S2", bruno.ID)
		assert.Equal(t, 1, bruno.Position)
		assert.Equal(t, 3000.0, bruno.TotalSalesAmount)
		assert.Equal(t, 500.0, bruno.AverageTicket)
		assert.True(t, bruno.Growth.Infinite)

		// Ana caiu pela metade
		ana := response.Ranking[1]
		assert.Equal(t, "S1", ana.ID)
		assert.Equal(t, 2, ana.Position)
		assert.Equal(t, -50.0, ana.Growth.Percent)
		assert.False(t, ana.Growth.Infinite)

		// Carla não vendeu e fica zerada no fim da lista
		carla := response.Ranking[2]
		assert.Equal(t, "S3", carla.ID)
		assert.Equal(t, 3, carla.Position)
		assert.Equal(t, 0.0, carla.TotalSalesAmount)
		assert.Equal(t, 0.0, carla.AverageTicket)
		assert.Equal(t, 0.0, carla.Growth.Percent)
		assert.False(t, carla.Growth.Infinite)
	})

	t.Run("Banco vazio retorna ranking vazio com GeneratedAt preenchido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, saleRepo, kpiRepo := newTestService(ctrl)

		kpiRepo.EXPECT().GetLatestPeriod().Return("", nil)
		saleRepo.EXPECT().GetLatestPeriod().Return("", nil)

		response := service.GetSellerRanking("")

		assert.Equal(t, "", response.Period)
		assert.Empty(t, response.Ranking)
		assert.False(t, response.GeneratedAt.IsZero())
	})

	t.Run("Falha ao listar vendedores retorna ranking vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, _, _ := newTestService(ctrl)

		sellerRepo.EXPECT().ListSellers().Return(nil, assert.AnError)

		response := service.GetSellerRanking("2025-06")

		assert.Equal(t, "2025-06", response.Period)
		assert.Empty(t, response.Ranking)
	})

	t.Run("Falha ao agregar o período anterior zera apenas os comparativos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, saleRepo, _ := newTestService(ctrl)

		sellerRepo.EXPECT().ListSellers().Return([]*domain.Seller{
			{ID: "S1", Name: "Ana"},
		}, nil)

		saleRepo.EXPECT().GetSellerTotalsByPeriod("2025-06").Return(map[string]*domain.SellerSalesTotals{
			"S1": {TotalAmount: 900, SalesCount: 3},
		}, nil)

		saleRepo.EXPECT().GetSellerTotalsByPeriod("2025-05").Return(nil, assert.AnError)

		response := service.GetSellerRanking("2025-06")

		assert.Len(t, response.Ranking, 1)
		assert.Equal(t, 900.0, response.Ranking[0].TotalSalesAmount)
		assert.Equal(t, 0.0, response.Ranking[0].PreviousTotalSalesAmount)
		assert.True(t, response.Ranking[0].Growth.Infinite)
	})
}
