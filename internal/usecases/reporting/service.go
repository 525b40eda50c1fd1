// Package reporting concentra as leituras consolidadas do dashboard:
// snapshot de KPIs, série diária e períodos disponíveis.
package reporting

import (
	"sort"
	"strings"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Reporter interface {
	ResolveActivePeriod(explicit string) string
	GetKpiSnapshot(period string) *domain.KpiView
	GetDailySeries(period string) *domain.DailySeriesResponse
	GetAvailablePeriods() *domain.AvailablePeriods
}

type Service struct {
	kpiRepo       repository.KpiRepository
	saleRepo      repository.SaleRepository
	dailySaleRepo repository.DailySaleRepository
}

func NewService(
	kpiRepo repository.KpiRepository,
	saleRepo repository.SaleRepository,
	dailySaleRepo repository.DailySaleRepository,
) Reporter {
	return &Service{
		kpiRepo:       kpiRepo,
		saleRepo:      saleRepo,
		dailySaleRepo: dailySaleRepo,
	}
}

// ResolveActivePeriod decide qual período o dashboard deve exibir.
// A ordem é: período pedido pelo cliente, período mais recente com snapshot
// de KPI, período mais recente com vendas lançadas. Quando o banco está
// vazio retorna string vazia — nunca erro, o dashboard renderiza o estado
// "sem dados".
func (s *Service) ResolveActivePeriod(explicit string) string {
	if explicit != "" {
		return explicit
	}

	period, err := s.kpiRepo.GetLatestPeriod()
	if err != nil {
		logrus.Error("Erro ao buscar o período mais recente de KPIs: ", err)
	}
	if period != "" {
		return period
	}

	period, err = s.saleRepo.GetLatestPeriod()
	if err != nil {
		logrus.Error("Erro ao buscar o período mais recente de vendas: ", err)
	}

	return period
}

// GetKpiSnapshot retorna o snapshot do período com as métricas derivadas.
// Falhas de leitura são registradas e o retorno é nil, tratado pela API
// como "sem dados para o período".
func (s *Service) GetKpiSnapshot(period string) *domain.KpiView {
	period = s.ResolveActivePeriod(period)
	if period == "" {
		return nil
	}

	snapshot, err := s.kpiRepo.GetByPeriod(period)
	if err != nil {
		logrus.WithField("period", period).Error("Erro ao buscar snapshot de KPIs: ", err)
		return nil
	}

	return domain.BuildKpiView(snapshot)
}

// GetDailySeries retorna a série diária do período ao lado da série do
// período anterior, alinhadas por dia do mês para o gráfico de tendência
func (s *Service) GetDailySeries(period string) *domain.DailySeriesResponse {
	period = s.ResolveActivePeriod(period)
	if period == "" {
		return nil
	}

	previousPeriod := utils.PreviousPeriod(period)

	current, err := s.dailySaleRepo.ListByPeriod(period)
	if err != nil {
		logrus.WithField("period", period).Error("Erro ao buscar vendas diárias: ", err)
		current = nil
	}

	previous, err := s.dailySaleRepo.ListByPeriod(previousPeriod)
	if err != nil {
		logrus.WithField("period", previousPeriod).Error("Erro ao buscar vendas diárias do período anterior: ", err)
		previous = nil
	}

	return &domain.DailySeriesResponse{
		Period:         period,
		PreviousPeriod: previousPeriod,
		Series:         domain.AlignDailySeries(current, previous),
	}
}

// GetAvailablePeriods retorna a união dos períodos com snapshot de KPI e
// dos períodos com vendas lançadas, do mais recente para o mais antigo
func (s *Service) GetAvailablePeriods() *domain.AvailablePeriods {
	kpiPeriods, err := s.kpiRepo.ListPeriods()
	if err != nil {
		logrus.Error("Erro ao listar períodos de KPIs: ", err)
	}

	salePeriods, err := s.saleRepo.ListPeriods()
	if err != nil {
		logrus.Error("Erro ao listar períodos de vendas: ", err)
	}

	seen := make(map[string]bool, len(kpiPeriods)+len(salePeriods))
	periods := make([]string, 0, len(kpiPeriods)+len(salePeriods))
	for _, period := range append(kpiPeriods, salePeriods...) {
		if period == "" || seen[period] {
			continue
		}
		seen[period] = true
		periods = append(periods, period)
	}

	// YYYY-MM ordena corretamente como string
	sort.Sort(sort.Reverse(sort.StringSlice(periods)))

	years := make([]string, 0)
	months := make([]string, 0)
	seenYear := make(map[string]bool)
	seenMonth := make(map[string]bool)
	for _, period := range periods {
		parts := strings.SplitN(period, "-", 2)
		if len(parts) != 2 {
			continue
		}
		if !seenYear[parts[0]] {
			seenYear[parts[0]] = true
			years = append(years, parts[0])
		}
		if !seenMonth[parts[1]] {
			seenMonth[parts[1]] = true
			months = append(months, parts[1])
		}
	}
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}
}
