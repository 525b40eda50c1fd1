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
	sellersTable = "sellers"
)

type SellerRepository interface {
	CreateSeller(seller *domain.Seller) error
	UpdateSeller(seller *domain.Seller) error
	DeleteSeller(id string) (bool, error)
	GetSellerByID(id string) (*domain.Seller, error)
	ListSellers() ([]*domain.Seller, error)
}

type sellerRepository struct {
	conn *postgres.Connection
}

func NewSellerRepository(conn *postgres.Connection) SellerRepository {
	return &sellerRepository{
		conn: conn,
	}
}

func (r *sellerRepository) CreateSeller(seller *domain.Seller) error {
	query, args, err := squirrel.
		Insert(sellersTable).
		Columns("id", "name", "email", "status", "photo_url", "created_by", "updated_by", "created_at", "updated_at").
		Values(
			seller.ID,
			seller.Name,
			seller.Email,
			seller.Status,
			seller.PhotoURL,
			seller.CreatedBy,
			seller.UpdatedBy,
			seller.CreatedAt,
			seller.UpdatedAt,
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

func (r *sellerRepository) UpdateSeller(seller *domain.Seller) error {
	query, args, err := squirrel.
		Update(sellersTable).
		Set("name", seller.Name).
		Set("email", seller.Email).
		Set("status", seller.Status).
		Set("photo_url", seller.PhotoURL).
		Set("updated_by", seller.UpdatedBy).
		Set("updated_at", seller.UpdatedAt).
		Where(squirrel.Eq{"id": seller.ID}).
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

// DeleteSeller remove o vendedor definitivamente (hard delete). A foto
// armazenada no storage NÃO é removida aqui — a limpeza é responsabilidade
// explícita de quem chama.
func (r *sellerRepository) DeleteSeller(id string) (bool, error) {
	query, args, err := squirrel.
		Delete(sellersTable).
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

func (r *sellerRepository) GetSellerByID(id string) (*domain.Seller, error) {
	query, args, err := squirrel.
		Select("id, name, email, status, photo_url, created_by, updated_by, created_at, updated_at").
		From(sellersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	seller, err := r.scanSeller(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
	}

	return seller, nil
}

func (r *sellerRepository) ListSellers() ([]*domain.Seller, error) {
	query, args, err := squirrel.
		Select("id, name, email, status, photo_url, created_by, updated_by, created_at, updated_at").
		From(sellersTable).
		OrderBy("name ASC").
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

	sellers := make([]*domain.Seller, 0)
	for rows.Next() {
		seller := &domain.Seller{}
		err := rows.Scan(
			&seller.ID,
			&seller.Name,
			&seller.Email,
			&seller.Status,
			&seller.PhotoURL,
			&seller.CreatedBy,
			&seller.UpdatedBy,
			&seller.CreatedAt,
			&seller.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		sellers = append(sellers, seller)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sellers, nil
}

func (r *sellerRepository) scanSeller(row *sql.Row) (*domain.Seller, error) {
	seller := &domain.Seller{}

	err := row.Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.Status,
		&seller.PhotoURL,
		&seller.CreatedBy,
		&seller.UpdatedBy,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return seller, nil
}
