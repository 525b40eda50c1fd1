// Package selling implementa o lançamento de vendas individuais.
package selling

import (
	"fmt"
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrSellerNotFound      = errors.New("vendedor não encontrado")
	ErrMissingRequiredData = errors.New("vendedor, valor e data são obrigatórios")
	ErrInvalidAmount       = errors.New("o valor da venda deve ser maior que zero")
)

type SaleManager interface {
	CreateSale(req *domain.CreateSaleRequest, actor domain.Actor) (*domain.SaleRecord, error)
	UpdateSale(req *domain.UpdateSaleRequest, actor domain.Actor) (*domain.SaleRecord, error)
	DeleteSale(id string, actor domain.Actor) error
	GetSale(id string) (*domain.SaleRecord, error)
	ListSalesByPeriod(period string) ([]*domain.SaleRecord, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	sellerRepo repository.SellerRepository
	auditRepo  repository.AuditLogRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	sellerRepo repository.SellerRepository,
	auditRepo repository.AuditLogRepository,
) SaleManager {
	return &Service{
		saleRepo:   saleRepo,
		sellerRepo: sellerRepo,
		auditRepo:  auditRepo,
	}
}

func (s *Service) CreateSale(req *domain.CreateSaleRequest, actor domain.Actor) (*domain.SaleRecord, error) {
	if req.SellerID == "" || req.SaleDate == "" {
		return nil, ErrMissingRequiredData
	}

	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	saleDate, err := utils.ParseDate(req.SaleDate)
	if err != nil {
		return nil, errors.Wrap(err, "data da venda inválida")
	}

	seller, err := s.sellerRepo.GetSellerByID(req.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da venda")
	}

	now := time.Now()
	sale := &domain.SaleRecord{
		ID:           id,
		SellerID:     req.SellerID,
		Amount:       req.Amount,
		SaleDate:     *saleDate,
		NewCustomer:  req.NewCustomer,
		OrderNumber:  req.OrderNumber,
		CustomerName: req.CustomerName,
		CreatedBy:    actor.ID,
		UpdatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.saleRepo.CreateSale(sale); err != nil {
		return nil, err
	}

	s.appendAudit(actor, domain.AuditActionCreate, sale.ID,
		fmt.Sprintf("venda de R$ %.2f lançada para o vendedor %s", sale.Amount, sale.SellerID))

	return sale, nil
}

// UpdateSale edita os campos mutáveis de uma venda. O vendedor dono da
// venda não pode ser trocado: para corrigir a atribuição, a venda deve
// ser removida e lançada novamente.
func (s *Service) UpdateSale(req *domain.UpdateSaleRequest, actor domain.Actor) (*domain.SaleRecord, error) {
	if req.ID == "" {
		return nil, errors.New("ID é obrigatório")
	}

	sale, err := s.saleRepo.GetSaleByID(req.ID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		sale.Amount = *req.Amount
	}

	if req.SaleDate != nil {
		saleDate, err := utils.ParseDate(*req.SaleDate)
		if err != nil {
			return nil, errors.Wrap(err, "data da venda inválida")
		}
		sale.SaleDate = *saleDate
	}

	if req.NewCustomer != nil {
		sale.NewCustomer = *req.NewCustomer
	}

	if req.OrderNumber != nil {
		sale.OrderNumber = *req.OrderNumber
	}

	if req.CustomerName != nil {
		sale.CustomerName = req.CustomerName
	}

	sale.UpdatedBy = actor.ID
	sale.UpdatedAt = time.Now()

	if err := s.saleRepo.UpdateSale(sale); err != nil {
		return nil, err
	}

	s.appendAudit(actor, domain.AuditActionUpdate, sale.ID, "venda atualizada")

	return sale, nil
}

func (s *Service) DeleteSale(id string, actor domain.Actor) error {
	found, err := s.saleRepo.DeleteSale(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSaleNotFound
	}

	s.appendAudit(actor, domain.AuditActionDelete, id, "venda removida")

	return nil
}

func (s *Service) GetSale(id string) (*domain.SaleRecord, error) {
	sale, err := s.saleRepo.GetSaleByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	return sale, nil
}

func (s *Service) ListSalesByPeriod(period string) ([]*domain.SaleRecord, error) {
	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, errors.Wrap(err, "período inválido")
	}

	return s.saleRepo.ListSalesByPeriod(period)
}

func (s *Service) appendAudit(actor domain.Actor, action, recordID, details string) {
	entry := &domain.AuditLogEntry{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		ActionType: action,
		RecordType: domain.AuditRecordSale,
		RecordID:   recordID,
		Details:    details,
	}

	if err := s.auditRepo.Append(entry); err != nil {
		logrus.WithField("record_id", recordID).Error("Erro ao gravar histórico de venda: ", err)
	}
}
