package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/database/postgres"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/lib/pq"
)

const (
	dailySalesTable = "daily_sales"
)

type DailySaleRepository interface {
	ListByPeriod(period string) ([]*domain.DailySale, error)
	SaveOrUpdate(entry *domain.DailySale) error
}

type dailySaleRepository struct {
	conn *postgres.Connection
}

func NewDailySaleRepository(conn *postgres.Connection) DailySaleRepository {
	return &dailySaleRepository{
		conn: conn,
	}
}

// ListByPeriod retorna as linhas diárias de um único período, ordenadas por data.
// Não há acumulação entre períodos.
func (r *dailySaleRepository) ListByPeriod(period string) ([]*domain.DailySale, error) {
	query, args, err := squirrel.
		Select("id", "period", "date", "amount", "goal", "created_at", "updated_at").
		From(dailySalesTable).
		Where(squirrel.Eq{"period": period}).
		OrderBy("date ASC").
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

	entries := make([]*domain.DailySale, 0)
	for rows.Next() {
		entry := &domain.DailySale{}
		err := rows.Scan(
			&entry.ID,
			&entry.Period,
			&entry.Date,
			&entry.Amount,
			&entry.Goal,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda diária: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *dailySaleRepository) SaveOrUpdate(entry *domain.DailySale) error {
	query := squirrel.StatementBuilder.
		Insert(dailySalesTable).
		Columns("period", "date", "amount", "goal").
		Values(
			entry.Period,
			entry.Date.Format(time.DateOnly),
			entry.Amount,
			entry.Goal,
		).
		Suffix(`
			ON CONFLICT (period, date) DO UPDATE SET
				amount = EXCLUDED.amount,
				goal = EXCLUDED.goal,
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
