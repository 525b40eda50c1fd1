package domain

// AvailablePeriods representa os períodos mensais com dados nas tabelas
// de KPI e de vendas
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato YYYY-MM
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}
