// Package kpis implementa a escrita manual de snapshots de KPI — na
// prática, a definição da meta mensal. Os valores medidos são
// reconsolidados pelo agendador a partir das vendas lançadas.
package kpis

import (
	"fmt"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPeriod  = errors.New("período inválido, use o formato YYYY-MM")
	ErrNegativeValues = errors.New("valores de KPI não podem ser negativos")
)

type KpiManager interface {
	UpsertSnapshot(req *domain.UpsertKpiRequest, actor domain.Actor) (*domain.KpiSnapshot, error)
}

type Service struct {
	kpiRepo   repository.KpiRepository
	auditRepo repository.AuditLogRepository
}

func NewService(kpiRepo repository.KpiRepository, auditRepo repository.AuditLogRepository) KpiManager {
	return &Service{
		kpiRepo:   kpiRepo,
		auditRepo: auditRepo,
	}
}

// UpsertSnapshot cria ou substitui o snapshot do período. O período é a
// chave natural do upsert.
func (s *Service) UpsertSnapshot(req *domain.UpsertKpiRequest, actor domain.Actor) (*domain.KpiSnapshot, error) {
	if _, err := utils.ParsePeriod(req.Period); err != nil {
		return nil, ErrInvalidPeriod
	}

	if req.TotalSold < 0 || req.TotalGoal < 0 || req.TotalClients < 0 || req.NewClients < 0 {
		return nil, ErrNegativeValues
	}

	snapshot := &domain.KpiSnapshot{
		Period:        req.Period,
		TotalSold:     req.TotalSold,
		TotalGoal:     req.TotalGoal,
		TotalClients:  req.TotalClients,
		NewClients:    req.NewClients,
		AverageTicket: req.AverageTicket,
	}

	if err := s.kpiRepo.SaveOrUpdate(snapshot); err != nil {
		return nil, err
	}

	entry := &domain.AuditLogEntry{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		ActionType: domain.AuditActionUpdate,
		RecordType: domain.AuditRecordKpi,
		RecordID:   snapshot.Period,
		Details:    fmt.Sprintf("snapshot do período %s gravado manualmente", snapshot.Period),
	}
	if err := s.auditRepo.Append(entry); err != nil {
		logrus.WithField("period", snapshot.Period).Error("Erro ao gravar histórico de KPI: ", err)
	}

	return snapshot, nil
}
