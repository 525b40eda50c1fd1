package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/database/postgres"
	"github.com/stretchr/testify/assert"
)

func TestSaleRepository_GetPeriodTotals(t *testing.T) {
	t.Run("Total de clientes acompanha a contagem de vendas do período", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewSaleRepository(&postgres.Connection{DB: db})

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT COALESCE(SUM(amount), 0), COUNT(*), COUNT(*) FILTER (WHERE new_customer) FROM sales WHERE to_char(sale_date, 'YYYY-MM') = $1",
		)).
			WithArgs("2025-06").
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count", "new"}).AddRow(1500.50, 4, 2))

		totals, err := repo.GetPeriodTotals("2025-06")

		assert.NoError(t, err)
		assert.Equal(t, 1500.50, totals.TotalSold)
		assert.Equal(t, 4, totals.SalesCount)
		assert.Equal(t, 4, totals.TotalClients)
		assert.Equal(t, 2, totals.NewClients)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Período sem vendas zera todos os agregados", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewSaleRepository(&postgres.Connection{DB: db})

		mock.ExpectQuery("SELECT COALESCE").
			WithArgs("2025-07").
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count", "new"}).AddRow(0, 0, 0))

		totals, err := repo.GetPeriodTotals("2025-07")

		assert.NoError(t, err)
		assert.Zero(t, totals.TotalSold)
		assert.Zero(t, totals.SalesCount)
		assert.Zero(t, totals.TotalClients)
		assert.Zero(t, totals.NewClients)
	})
}
