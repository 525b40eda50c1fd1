package domain

import (
	"sort"
	"time"

	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
)

// GrowthDelta representa a variação de vendas entre dois períodos.
// Quando o período anterior é zero e o atual é positivo, a variação é
// marcada como infinita em vez de um percentual — convenção da aplicação
// para evitar divisão por zero.
type GrowthDelta struct {
	Percent  float64 `json:"percent"`
	Infinite bool    `json:"infinite"`
}

// CalculateGrowthDelta calcula a variação entre o total atual e o anterior
func CalculateGrowthDelta(current, previous float64) GrowthDelta {
	if previous == 0 {
		if current > 0 {
			return GrowthDelta{Infinite: true}
		}
		return GrowthDelta{Percent: 0}
	}

	return GrowthDelta{
		Percent: utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100),
	}
}

// SellerPerformance é o perfil de um vendedor combinado com seus agregados
// de vendas no período e no período imediatamente anterior. Não é persistido.
type SellerPerformance struct {
	Seller
	TotalSalesAmount         float64     `json:"total_sales_amount"`
	SalesCount               int         `json:"sales_count"`
	AverageTicket            float64     `json:"average_ticket"`
	PreviousTotalSalesAmount float64     `json:"previous_total_sales_amount"`
	PreviousSalesCount       int         `json:"previous_sales_count"`
	Growth                   GrowthDelta `json:"growth"`
	Position                 int         `json:"position"`
}

// SellerRankingResponse é o ranking de vendedores de um período
type SellerRankingResponse struct {
	Period         string               `json:"period"`
	PreviousPeriod string               `json:"previous_period"`
	Ranking        []*SellerPerformance `json:"ranking"`
	GeneratedAt    time.Time            `json:"generated_at"`
}

// RankSellerPerformances ordena os vendedores por total vendido no período,
// do maior para o menor, e atribui as posições. A ordenação é estável:
// empates preservam a ordem original de entrada.
func RankSellerPerformances(performances []*SellerPerformance) {
	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].TotalSalesAmount > performances[j].TotalSalesAmount
	})

	for i, p := range performances {
		p.Position = i + 1
	}
}
