// Package billing implementa o fechamento mensal de faturamento.
package billing

import (
	"fmt"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrStatementNotFound = errors.New("fechamento não encontrado")
	ErrInvalidPeriod     = errors.New("período inválido, use o formato YYYY-MM")
	ErrNegativeAmount    = errors.New("valores de faturamento não podem ser negativos")
)

type BillingManager interface {
	UpsertStatement(req *domain.UpsertBillingRequest, actor domain.Actor) (*domain.BillingStatement, error)
	GetStatement(period string) (*domain.BillingStatement, error)
	ListStatements() ([]*domain.BillingStatement, error)
	DeleteStatement(period string, actor domain.Actor) error
}

type Service struct {
	billingRepo repository.BillingRepository
	auditRepo   repository.AuditLogRepository
}

func NewService(billingRepo repository.BillingRepository, auditRepo repository.AuditLogRepository) BillingManager {
	return &Service{
		billingRepo: billingRepo,
		auditRepo:   auditRepo,
	}
}

// UpsertStatement cria ou substitui o fechamento do período. O período é a
// chave natural: um segundo envio para o mesmo período sobrescreve o anterior.
func (s *Service) UpsertStatement(req *domain.UpsertBillingRequest, actor domain.Actor) (*domain.BillingStatement, error) {
	if _, err := utils.ParsePeriod(req.Period); err != nil {
		return nil, ErrInvalidPeriod
	}

	if req.ReleasedAmount < 0 || req.ATRAmount < 0 {
		return nil, ErrNegativeAmount
	}

	existing, err := s.billingRepo.GetByPeriod(req.Period)
	if err != nil {
		return nil, err
	}

	statement := &domain.BillingStatement{
		Period:         req.Period,
		ReleasedAmount: req.ReleasedAmount,
		ATRAmount:      req.ATRAmount,
		Notes:          req.Notes,
		CreatedBy:      actor.ID,
		UpdatedBy:      actor.ID,
	}

	action := domain.AuditActionCreate
	if existing != nil {
		statement.CreatedBy = existing.CreatedBy
		action = domain.AuditActionUpdate
	}

	if err := s.billingRepo.SaveOrUpdate(statement); err != nil {
		return nil, err
	}

	s.appendAudit(actor, action, statement.Period,
		fmt.Sprintf("fechamento do período %s gravado", statement.Period))

	return statement, nil
}

func (s *Service) GetStatement(period string) (*domain.BillingStatement, error) {
	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, ErrInvalidPeriod
	}

	statement, err := s.billingRepo.GetByPeriod(period)
	if err != nil {
		return nil, err
	}
	if statement == nil {
		return nil, ErrStatementNotFound
	}

	return statement, nil
}

func (s *Service) ListStatements() ([]*domain.BillingStatement, error) {
	return s.billingRepo.List()
}

func (s *Service) DeleteStatement(period string, actor domain.Actor) error {
	if _, err := utils.ParsePeriod(period); err != nil {
		return ErrInvalidPeriod
	}

	found, err := s.billingRepo.DeleteByPeriod(period)
	if err != nil {
		return err
	}
	if !found {
		return ErrStatementNotFound
	}

	s.appendAudit(actor, domain.AuditActionDelete, period, "fechamento removido")

	return nil
}

func (s *Service) appendAudit(actor domain.Actor, action, recordID, details string) {
	entry := &domain.AuditLogEntry{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		ActionType: action,
		RecordType: domain.AuditRecordBilling,
		RecordID:   recordID,
		Details:    details,
	}

	if err := s.auditRepo.Append(entry); err != nil {
		logrus.WithField("record_id", recordID).Error("Erro ao gravar histórico de fechamento: ", err)
	}
}
