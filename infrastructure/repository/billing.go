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
	billingStatementsTable = "billing_statements"
)

type BillingRepository interface {
	GetByPeriod(period string) (*domain.BillingStatement, error)
	List() ([]*domain.BillingStatement, error)
	SaveOrUpdate(statement *domain.BillingStatement) error
	DeleteByPeriod(period string) (bool, error)
}

type billingRepository struct {
	conn *postgres.Connection
}

func NewBillingRepository(conn *postgres.Connection) BillingRepository {
	return &billingRepository{
		conn: conn,
	}
}

func (r *billingRepository) GetByPeriod(period string) (*domain.BillingStatement, error) {
	query, args, err := squirrel.
		Select(
			"id", "period", "released_amount", "atr_amount", "notes",
			"created_by", "updated_by", "created_at", "updated_at",
		).
		From(billingStatementsTable).
		Where(squirrel.Eq{"period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	statement := &domain.BillingStatement{}
	err = r.conn.QueryRow(query, args...).Scan(
		&statement.ID,
		&statement.Period,
		&statement.ReleasedAmount,
		&statement.ATRAmount,
		&statement.Notes,
		&statement.CreatedBy,
		&statement.UpdatedBy,
		&statement.CreatedAt,
		&statement.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fechamento mensal: %w", err)
	}

	return statement, nil
}

func (r *billingRepository) List() ([]*domain.BillingStatement, error) {
	query, args, err := squirrel.
		Select(
			"id", "period", "released_amount", "atr_amount", "notes",
			"created_by", "updated_by", "created_at", "updated_at",
		).
		From(billingStatementsTable).
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

	statements := make([]*domain.BillingStatement, 0)
	for rows.Next() {
		statement := &domain.BillingStatement{}
		err := rows.Scan(
			&statement.ID,
			&statement.Period,
			&statement.ReleasedAmount,
			&statement.ATRAmount,
			&statement.Notes,
			&statement.CreatedBy,
			&statement.UpdatedBy,
			&statement.CreatedAt,
			&statement.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fechamento mensal: %w", err)
		}
		statements = append(statements, statement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return statements, nil
}

func (r *billingRepository) SaveOrUpdate(statement *domain.BillingStatement) error {
	query := squirrel.StatementBuilder.
		Insert(billingStatementsTable).
		Columns("period", "released_amount", "atr_amount", "notes", "created_by", "updated_by").
		Values(
			statement.Period,
			statement.ReleasedAmount,
			statement.ATRAmount,
			statement.Notes,
			statement.CreatedBy,
			statement.UpdatedBy,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				released_amount = EXCLUDED.released_amount,
				atr_amount = EXCLUDED.atr_amount,
				notes = EXCLUDED.notes,
				updated_by = EXCLUDED.updated_by,
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

func (r *billingRepository) DeleteByPeriod(period string) (bool, error) {
	query, args, err := squirrel.
		Delete(billingStatementsTable).
		Where(squirrel.Eq{"period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}
