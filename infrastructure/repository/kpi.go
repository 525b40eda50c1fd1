package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/database/postgres"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/lib/pq"
)

const (
	kpiSnapshotsTable = "kpi_snapshots"
)

type KpiRepository interface {
	GetByPeriod(period string) (*domain.KpiSnapshot, error)
	GetLatestPeriod() (string, error)
	SaveOrUpdate(snapshot *domain.KpiSnapshot) error
	ListPeriods() ([]string, error)
}

type kpiRepository struct {
	conn *postgres.Connection
}

func NewKpiRepository(conn *postgres.Connection) KpiRepository {
	return &kpiRepository{
		conn: conn,
	}
}

func (r *kpiRepository) GetByPeriod(period string) (*domain.KpiSnapshot, error) {
	query, args, err := squirrel.
		Select(
			"id", "period", "total_sold", "total_goal", "total_clients",
			"new_clients", "average_ticket", "created_at", "updated_at",
		).
		From(kpiSnapshotsTable).
		Where(squirrel.Eq{"period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.KpiSnapshot{}
	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.Period,
		&snapshot.TotalSold,
		&snapshot.TotalGoal,
		&snapshot.TotalClients,
		&snapshot.NewClients,
		&snapshot.AverageTicket,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de KPI: %w", err)
	}

	return snapshot, nil
}

// GetLatestPeriod retorna o período mais recente com snapshot de KPI.
// Tabela vazia não é erro: retorna string vazia.
func (r *kpiRepository) GetLatestPeriod() (string, error) {
	query, args, err := squirrel.
		Select("period").
		From(kpiSnapshotsTable).
		OrderBy("period DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var period string
	err = r.conn.QueryRow(query, args...).Scan(&period)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao resolver período mais recente de KPI: %w", err)
	}

	return period, nil
}

func (r *kpiRepository) SaveOrUpdate(snapshot *domain.KpiSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert(kpiSnapshotsTable).
		Columns("period", "total_sold", "total_goal", "total_clients", "new_clients", "average_ticket").
		Values(
			snapshot.Period,
			snapshot.TotalSold,
			snapshot.TotalGoal,
			snapshot.TotalClients,
			snapshot.NewClients,
			snapshot.AverageTicket,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				total_sold = EXCLUDED.total_sold,
				total_goal = EXCLUDED.total_goal,
				total_clients = EXCLUDED.total_clients,
				new_clients = EXCLUDED.new_clients,
				average_ticket = EXCLUDED.average_ticket,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListPeriods retorna os períodos com snapshot, do mais recente para o mais antigo
func (r *kpiRepository) ListPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("period").
		From(kpiSnapshotsTable).
		OrderBy("period DESC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}
