package domain

import "time"

// Tipos de ação registrados no histórico
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// Tipos de registro rastreados no histórico
const (
	AuditRecordSeller  = "seller"
	AuditRecordSale    = "sale"
	AuditRecordBilling = "billing_statement"
	AuditRecordKpi     = "kpi_snapshot"
)

// AuditLogEntry é uma entrada do histórico de alterações. A gravação do
// histórico é sempre best-effort: falhas nunca desfazem a operação principal.
type AuditLogEntry struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	ActionType string    `json:"action_type"`
	RecordType string    `json:"record_type"`
	RecordID   string    `json:"record_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}
