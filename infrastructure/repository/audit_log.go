package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/database/postgres"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
)

const (
	auditLogsTable = "audit_logs"
)

type AuditLogRepository interface {
	Append(entry *domain.AuditLogEntry) error
	ListByRecord(recordType, recordID string) ([]*domain.AuditLogEntry, error)
}

type auditLogRepository struct {
	conn *postgres.Connection
}

func NewAuditLogRepository(conn *postgres.Connection) AuditLogRepository {
	return &auditLogRepository{
		conn: conn,
	}
}

// Append grava uma entrada no histórico. Os chamadores tratam a gravação
// como best-effort: um erro aqui nunca deve desfazer a operação principal.
func (r *auditLogRepository) Append(entry *domain.AuditLogEntry) error {
	query, args, err := squirrel.
		Insert(auditLogsTable).
		Columns("user_id", "user_email", "action_type", "record_type", "record_id", "details").
		Values(
			entry.UserID,
			entry.UserEmail,
			entry.ActionType,
			entry.RecordType,
			entry.RecordID,
			entry.Details,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar histórico: %w", err)
	}

	return nil
}

func (r *auditLogRepository) ListByRecord(recordType, recordID string) ([]*domain.AuditLogEntry, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "user_email", "action_type", "record_type", "record_id", "details", "created_at").
		From(auditLogsTable).
		Where(squirrel.Eq{"record_type": recordType, "record_id": recordID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditLogEntry, 0)
	for rows.Next() {
		entry := &domain.AuditLogEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.UserEmail,
			&entry.ActionType,
			&entry.RecordType,
			&entry.RecordID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de histórico: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
