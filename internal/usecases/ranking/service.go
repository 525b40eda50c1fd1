// Package ranking monta o ranking de vendedores por período com as
// métricas comparativas ao período anterior.
package ranking

import (
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/reporting"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Ranker interface {
	GetSellerRanking(period string) *domain.SellerRankingResponse
}

type Service struct {
	sellerRepo repository.SellerRepository
	saleRepo   repository.SaleRepository
	reporter   reporting.Reporter
}

func NewService(
	sellerRepo repository.SellerRepository,
	saleRepo repository.SaleRepository,
	reporter reporting.Reporter,
) Ranker {
	return &Service{
		sellerRepo: sellerRepo,
		saleRepo:   saleRepo,
		reporter:   reporter,
	}
}

// GetSellerRanking retorna todos os vendedores cadastrados ordenados pelo
// total vendido no período, com ticket médio e variação sobre o período
// anterior. Vendedores sem vendas aparecem zerados no fim da lista.
// Falhas de leitura são registradas e o ranking volta vazio.
func (s *Service) GetSellerRanking(period string) *domain.SellerRankingResponse {
	period = s.reporter.ResolveActivePeriod(period)

	response := &domain.SellerRankingResponse{
		Period:      period,
		Ranking:     make([]*domain.SellerPerformance, 0),
		GeneratedAt: time.Now(),
	}

	if period == "" {
		return response
	}

	previousPeriod := utils.PreviousPeriod(period)
	response.PreviousPeriod = previousPeriod

	sellers, err := s.sellerRepo.ListSellers()
	if err != nil {
		logrus.Error("Erro ao listar vendedores para o ranking: ", err)
		return response
	}

	totals, err := s.saleRepo.GetSellerTotalsByPeriod(period)
	if err != nil {
		logrus.WithField("period", period).Error("Erro ao agregar vendas do período: ", err)
		return response
	}

	previousTotals, err := s.saleRepo.GetSellerTotalsByPeriod(previousPeriod)
	if err != nil {
		logrus.WithField("period", previousPeriod).Error("Erro ao agregar vendas do período anterior: ", err)
		previousTotals = map[string]*domain.SellerSalesTotals{}
	}

	performances := make([]*domain.SellerPerformance, 0, len(sellers))
	for _, seller := range sellers {
		performance := &domain.SellerPerformance{Seller: *seller}

		if total, ok := totals[seller.ID]; ok && total != nil {
			performance.TotalSalesAmount = total.TotalAmount
			performance.SalesCount = total.SalesCount
		}

		if previous, ok := previousTotals[seller.ID]; ok && previous != nil {
			performance.PreviousTotalSalesAmount = previous.TotalAmount
			performance.PreviousSalesCount = previous.SalesCount
		}

		performance.AverageTicket = domain.AverageTicket(performance.TotalSalesAmount, performance.SalesCount)
		performance.Growth = domain.CalculateGrowthDelta(performance.TotalSalesAmount, performance.PreviousTotalSalesAmount)

		performances = append(performances, performance)
	}

	domain.RankSellerPerformances(performances)
	response.Ranking = performances

	return response
}
