package domain

import "time"

// BillingStatement é o fechamento mensal de faturamento: valores liberados,
// valores ATR (liberação atrasada) e observações livres
type BillingStatement struct {
	ID             int64     `json:"id"`
	Period         string    `json:"period"` // Formato YYYY-MM
	ReleasedAmount float64   `json:"released_amount"`
	ATRAmount      float64   `json:"atr_amount"`
	Notes          string    `json:"notes"`
	CreatedBy      string    `json:"created_by"`
	UpdatedBy      string    `json:"updated_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpsertBillingRequest é o payload de criação/edição de um fechamento mensal
type UpsertBillingRequest struct {
	Period         string  `json:"period"`
	ReleasedAmount float64 `json:"released_amount"`
	ATRAmount      float64 `json:"atr_amount"`
	Notes          string  `json:"notes"`
}
