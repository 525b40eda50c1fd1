package domain

import "time"

// SaleRecord representa uma venda registrada por um vendedor
type SaleRecord struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"salesperson_id"`
	Amount       float64   `json:"amount"`
	SaleDate     time.Time `json:"sale_date"`
	NewCustomer  bool      `json:"new_customer"`
	OrderNumber  string    `json:"order_number"`
	CustomerName *string   `json:"customer_name"`
	CreatedBy    string    `json:"created_by"`
	UpdatedBy    string    `json:"updated_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateSaleRequest é o payload de registro de uma venda
type CreateSaleRequest struct {
	SellerID     string  `json:"salesperson_id"`
	Amount       float64 `json:"amount"`
	SaleDate     string  `json:"sale_date"` // YYYY-MM-DD
	NewCustomer  bool    `json:"new_customer"`
	OrderNumber  string  `json:"order_number"`
	CustomerName *string `json:"customer_name"`
}

// UpdateSaleRequest é o payload de edição de uma venda.
// O vendedor dono da venda (salesperson_id) é imutável após a criação
// e por isso não aparece aqui.
type UpdateSaleRequest struct {
	ID           string   `json:"id"`
	Amount       *float64 `json:"amount"`
	SaleDate     *string  `json:"sale_date"`
	NewCustomer  *bool    `json:"new_customer"`
	OrderNumber  *string  `json:"order_number"`
	CustomerName *string  `json:"customer_name"`
}

// SellerSalesTotals agrega as vendas de um vendedor em um período
type SellerSalesTotals struct {
	TotalAmount float64 `json:"total_amount"`
	SalesCount  int     `json:"sales_count"`
}

// PeriodSalesTotals agrega as vendas de toda a organização em um período,
// insumo para o recálculo do snapshot de KPI
type PeriodSalesTotals struct {
	TotalSold    float64 `json:"total_sold"`
	SalesCount   int     `json:"sales_count"`
	TotalClients int     `json:"total_clients"`
	NewClients   int     `json:"new_clients"`
}
