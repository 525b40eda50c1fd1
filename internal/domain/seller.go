// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SellerStatus representa a situação cadastral de um vendedor
type SellerStatus string

const (
	SellerStatusActive   SellerStatus = "active"
	SellerStatusInactive SellerStatus = "inactive"
	SellerStatusPending  SellerStatus = "pending"
)

// ValidSellerStatus verifica se o status informado é um dos valores aceitos
func ValidSellerStatus(s string) bool {
	switch SellerStatus(s) {
	case SellerStatusActive, SellerStatusInactive, SellerStatusPending:
		return true
	}
	return false
}

// Seller representa o perfil de um vendedor
type Seller struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Status    SellerStatus `json:"status"`
	PhotoURL  *string      `json:"photo_url"`
	CreatedBy string       `json:"created_by"`
	UpdatedBy string       `json:"updated_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CreateSellerRequest é o payload de criação de um vendedor
type CreateSellerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// UpdateSellerRequest é o payload de atualização de um vendedor.
// Campos nulos são mantidos como estão no banco.
type UpdateSellerRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Status   *string `json:"status"`
	PhotoURL *string `json:"photo_url"`
}

// Actor identifica quem executa uma operação de escrita, para os campos de auditoria
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
