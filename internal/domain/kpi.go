package domain

import "time"

// KpiSnapshot é o resumo mensal pré-calculado da organização, uma linha por período
type KpiSnapshot struct {
	ID            int64     `json:"id"`
	Period        string    `json:"period"` // Formato YYYY-MM
	TotalSold     float64   `json:"total_sold"`
	TotalGoal     float64   `json:"total_goal"`
	TotalClients  int       `json:"total_clients"`
	NewClients    int       `json:"new_clients"`
	AverageTicket float64   `json:"average_ticket"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpsertKpiRequest é o payload de criação/atualização manual de um snapshot de KPI.
// É usado sobretudo para definir a meta do período; os valores medidos são
// recalculados pelo agendador.
type UpsertKpiRequest struct {
	Period        string  `json:"period"`
	TotalSold     float64 `json:"total_sold"`
	TotalGoal     float64 `json:"total_goal"`
	TotalClients  int     `json:"total_clients"`
	NewClients    int     `json:"new_clients"`
	AverageTicket float64 `json:"average_ticket"`
}

// KpiView é o snapshot enriquecido com as métricas derivadas para exibição
type KpiView struct {
	*KpiSnapshot
	GoalPercent      *float64 `json:"goal_percent"`  // nil = meta não definida
	GoalProgress     float64  `json:"goal_progress"` // limitado a 0-100, só para barra de progresso
	ReturningClients int      `json:"returning_clients"`
}

// BuildKpiView deriva as métricas de exibição de um snapshot
func BuildKpiView(snapshot *KpiSnapshot) *KpiView {
	if snapshot == nil {
		return nil
	}

	return &KpiView{
		KpiSnapshot:      snapshot,
		GoalPercent:      GoalPercentage(snapshot.TotalSold, snapshot.TotalGoal),
		GoalProgress:     GoalProgress(snapshot.TotalSold, snapshot.TotalGoal),
		ReturningClients: ReturningClients(snapshot.TotalClients, snapshot.NewClients),
	}
}
