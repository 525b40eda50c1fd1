package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/database/postgres"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/lib/pq"
)

const (
	salesTable = "sales"

	// Expressão que projeta a data da venda como período YYYY-MM
	salePeriodExpr = "to_char(sale_date, 'YYYY-MM')"
)

type SaleRepository interface {
	CreateSale(sale *domain.SaleRecord) error
	UpdateSale(sale *domain.SaleRecord) error
	DeleteSale(id string) (bool, error)
	GetSaleByID(id string) (*domain.SaleRecord, error)
	ListSalesByPeriod(period string) ([]*domain.SaleRecord, error)
	GetSellerTotalsByPeriod(period string) (map[string]*domain.SellerSalesTotals, error)
	GetPeriodTotals(period string) (*domain.PeriodSalesTotals, error)
	GetDailyTotalsByPeriod(period string) ([]*domain.DailySale, error)
	GetLatestPeriod() (string, error)
	ListPeriods() ([]string, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(sale *domain.SaleRecord) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns(
			"id", "salesperson_id", "amount", "sale_date", "new_customer",
			"order_number", "customer_name", "created_by", "updated_by",
			"created_at", "updated_at",
		).
		Values(
			sale.ID,
			sale.SellerID,
			sale.Amount,
			sale.SaleDate.Format(time.DateOnly),
			sale.NewCustomer,
			sale.OrderNumber,
			sale.CustomerName,
			sale.CreatedBy,
			sale.UpdatedBy,
			sale.CreatedAt,
			sale.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateSale atualiza uma venda. O salesperson_id e os campos de criação
// nunca são alterados aqui — imutáveis após a criação.
func (r *saleRepository) UpdateSale(sale *domain.SaleRecord) error {
	query, args, err := squirrel.
		Update(salesTable).
		Set("amount", sale.Amount).
		Set("sale_date", sale.SaleDate.Format(time.DateOnly)).
		Set("new_customer", sale.NewCustomer).
		Set("order_number", sale.OrderNumber).
		Set("customer_name", sale.CustomerName).
		Set("updated_by", sale.UpdatedBy).
		Set("updated_at", sale.UpdatedAt).
		Where(squirrel.Eq{"id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *saleRepository) DeleteSale(id string) (bool, error) {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
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

func (r *saleRepository) GetSaleByID(id string) (*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select(
			"id", "salesperson_id", "amount", "sale_date", "new_customer",
			"order_number", "customer_name", "created_by", "updated_by",
			"created_at", "updated_at",
		).
		From(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale := &domain.SaleRecord{}
	err = r.conn.QueryRow(query, args...).Scan(
		&sale.ID,
		&sale.SellerID,
		&sale.Amount,
		&sale.SaleDate,
		&sale.NewCustomer,
		&sale.OrderNumber,
		&sale.CustomerName,
		&sale.CreatedBy,
		&sale.UpdatedBy,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) ListSalesByPeriod(period string) ([]*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select(
			"id", "salesperson_id", "amount", "sale_date", "new_customer",
			"order_number", "customer_name", "created_by", "updated_by",
			"created_at", "updated_at",
		).
		From(salesTable).
		Where(squirrel.Eq{salePeriodExpr: period}).
		OrderBy("sale_date ASC").
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

	sales := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		sale := &domain.SaleRecord{}
		err := rows.Scan(
			&sale.ID,
			&sale.SellerID,
			&sale.Amount,
			&sale.SaleDate,
			&sale.NewCustomer,
			&sale.OrderNumber,
			&sale.CustomerName,
			&sale.CreatedBy,
			&sale.UpdatedBy,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// GetSellerTotalsByPeriod agrega, por vendedor, o total vendido e a
// quantidade de vendas do período
func (r *saleRepository) GetSellerTotalsByPeriod(period string) (map[string]*domain.SellerSalesTotals, error) {
	query, args, err := squirrel.
		Select("salesperson_id", "COALESCE(SUM(amount), 0)", "COUNT(*)").
		From(salesTable).
		Where(squirrel.Eq{salePeriodExpr: period}).
		GroupBy("salesperson_id").
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

	totals := make(map[string]*domain.SellerSalesTotals)
	for rows.Next() {
		var sellerID string
		entry := &domain.SellerSalesTotals{}
		if err := rows.Scan(&sellerID, &entry.TotalAmount, &entry.SalesCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregados de vendas: %w", err)
		}
		totals[sellerID] = entry
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// GetPeriodTotals agrega as vendas de toda a organização em um período
func (r *saleRepository) GetPeriodTotals(period string) (*domain.PeriodSalesTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(amount), 0)",
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE new_customer)",
		).
		From(salesTable).
		Where(squirrel.Eq{salePeriodExpr: period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.PeriodSalesTotals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.TotalSold,
		&totals.SalesCount,
		&totals.NewClients,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear agregados do período: %w", err)
	}

	// Cada venda registra um atendimento: o total de clientes do período
	// é a própria contagem de vendas.
	totals.TotalClients = totals.SalesCount

	return totals, nil
}

// GetDailyTotalsByPeriod agrega o total vendido por dia dentro de um período
func (r *saleRepository) GetDailyTotalsByPeriod(period string) ([]*domain.DailySale, error) {
	query, args, err := squirrel.
		Select("sale_date", "COALESCE(SUM(amount), 0)").
		From(salesTable).
		Where(squirrel.Eq{salePeriodExpr: period}).
		GroupBy("sale_date").
		OrderBy("sale_date ASC").
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

	totals := make([]*domain.DailySale, 0)
	for rows.Next() {
		entry := &domain.DailySale{Period: period}
		if err := rows.Scan(&entry.Date, &entry.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais diários: %w", err)
		}
		totals = append(totals, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// GetLatestPeriod retorna o período mais recente com vendas registradas.
// Retorna string vazia (sem erro) quando a tabela está vazia — ausência de
// dados é um resultado válido, não uma falha.
func (r *saleRepository) GetLatestPeriod() (string, error) {
	query := fmt.Sprintf(
		"SELECT %s AS period FROM %s GROUP BY period ORDER BY period DESC LIMIT 1",
		salePeriodExpr, salesTable,
	)

	var period string
	err := r.conn.QueryRow(query).Scan(&period)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao resolver período mais recente de vendas: %w", err)
	}

	return period, nil
}

// ListPeriods retorna os períodos distintos com vendas, do mais recente
// para o mais antigo
func (r *saleRepository) ListPeriods() ([]string, error) {
	query := fmt.Sprintf(
		"SELECT %s AS period FROM %s GROUP BY period ORDER BY period DESC",
		salePeriodExpr, salesTable,
	)

	rows, err := r.conn.Query(query)
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
