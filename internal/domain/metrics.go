package domain

import (
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
)

// GoalPercentage calcula o percentual atingido da meta, sem teto.
// Retorna nil quando a meta não está definida (goal <= 0) — o que é diferente
// de 0% e deve ser exibido de forma distinta.
func GoalPercentage(sold, goal float64) *float64 {
	if goal <= 0 {
		return nil
	}

	pct := utils.RoundWithTwoDecimalPlace(sold / goal * 100)
	return &pct
}

// GoalProgress calcula o percentual da meta limitado a 0-100.
// Usado apenas para a largura visual de barras de progresso; badges e
// relatórios usam GoalPercentage, que não tem teto.
func GoalProgress(sold, goal float64) float64 {
	pct := GoalPercentage(sold, goal)
	if pct == nil {
		return 0
	}

	return utils.Clamp(*pct, 0, 100)
}

// ReturningClients calcula os clientes recorrentes (total - novos).
// Dados inconsistentes (novos > total) são saturados em zero.
func ReturningClients(totalClients, newClients int) int {
	returning := totalClients - newClients
	if returning < 0 {
		return 0
	}
	return returning
}

// AverageTicket calcula o ticket médio. Zero é o valor definido para
// "sem vendas" — diferente do sentinela de meta não definida.
func AverageTicket(totalAmount float64, salesCount int) float64 {
	if salesCount <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(totalAmount / float64(salesCount))
}
