// Package sellers implementa o cadastro de vendedores, incluindo a foto
// de perfil armazenada em storage externo e o histórico de alterações.
package sellers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository"
	"github.com/Wall-AR/sales-pulse-api/infrastructure/storage"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrSellerNotFound      = errors.New("vendedor não encontrado")
	ErrMissingRequiredData = errors.New("nome e email são obrigatórios")
	ErrInvalidStatus       = errors.New("status de vendedor inválido")
)

// PhotoUpload é uma foto de perfil recebida via multipart
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// UpdateResult separa o resultado da atualização de cadastro do resultado
// do processamento da foto. PhotoErr preenchido com Seller não-nulo indica
// sucesso parcial: os campos foram salvos mas a foto não foi trocada.
type UpdateResult struct {
	Seller   *domain.Seller
	PhotoErr error
}

type SellerManager interface {
	CreateSeller(ctx context.Context, req *domain.CreateSellerRequest, photo *PhotoUpload, actor domain.Actor) (*UpdateResult, error)
	UpdateSeller(ctx context.Context, req *domain.UpdateSellerRequest, photo *PhotoUpload, actor domain.Actor) (*UpdateResult, error)
	DeleteSeller(ctx context.Context, id string, actor domain.Actor) error
	GetSeller(id string) (*domain.Seller, error)
	ListSellers() ([]*domain.Seller, error)
}

type Service struct {
	sellerRepo repository.SellerRepository
	auditRepo  repository.AuditLogRepository
	photos     storage.AvatarStorage
}

func NewService(
	sellerRepo repository.SellerRepository,
	auditRepo repository.AuditLogRepository,
	photos storage.AvatarStorage,
) SellerManager {
	return &Service{
		sellerRepo: sellerRepo,
		auditRepo:  auditRepo,
		photos:     photos,
	}
}

// CreateSeller persiste o cadastro e só então processa a foto. Falha no
// upload deixa o cadastro sem foto e é reportada em PhotoErr. A criação
// nunca é desfeita por problema com a foto.
func (s *Service) CreateSeller(ctx context.Context, req *domain.CreateSellerRequest, photo *PhotoUpload, actor domain.Actor) (*UpdateResult, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrMissingRequiredData
	}

	status := req.Status
	if status == "" {
		status = string(domain.SellerStatusActive)
	}
	if !domain.ValidSellerStatus(status) {
		return nil, ErrInvalidStatus
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do vendedor")
	}

	now := time.Now()
	seller := &domain.Seller{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Status:    domain.SellerStatus(status),
		CreatedBy: actor.ID,
		UpdatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sellerRepo.CreateSeller(seller); err != nil {
		return nil, err
	}

	result := &UpdateResult{Seller: seller}

	if photo != nil {
		photoURL, err := s.photos.Upload(ctx, seller.ID, photo.Filename, photo.Content)
		if err != nil {
			logrus.WithField("seller_id", seller.ID).Error("Erro ao enviar foto do vendedor: ", err)
			result.PhotoErr = errors.Wrap(err, "erro ao enviar foto do vendedor")
		} else {
			seller.PhotoURL = &photoURL
			if err := s.sellerRepo.UpdateSeller(seller); err != nil {
				logrus.WithField("seller_id", seller.ID).Error("Erro ao gravar URL da foto do vendedor: ", err)
				result.PhotoErr = errors.Wrap(err, "erro ao gravar URL da foto do vendedor")
				seller.PhotoURL = nil
			}
		}
	}

	s.appendAudit(actor, domain.AuditActionCreate, seller.ID, fmt.Sprintf("vendedor %q criado", seller.Name))

	return result, nil
}

// UpdateSeller aplica as alterações de cadastro e, se houver, a troca de
// foto. A troca segue a ordem: sobe a nova, persiste a URL, remove a
// antiga. Falha no upload não bloqueia a atualização dos demais campos;
// o resultado volta com PhotoErr preenchido. A remoção da foto antiga é
// best-effort.
func (s *Service) UpdateSeller(ctx context.Context, req *domain.UpdateSellerRequest, photo *PhotoUpload, actor domain.Actor) (*UpdateResult, error) {
	if req.ID == "" {
		return nil, errors.New("ID é obrigatório")
	}

	seller, err := s.sellerRepo.GetSellerByID(req.ID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}

	if req.Name != nil {
		seller.Name = *req.Name
	}

	if req.Email != nil {
		seller.Email = *req.Email
	}

	if req.Status != nil {
		if !domain.ValidSellerStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		seller.Status = domain.SellerStatus(*req.Status)
	}

	var oldPhotoURL *string

	if req.PhotoURL != nil {
		// String vazia significa remover a foto do cadastro
		if *req.PhotoURL == "" {
			oldPhotoURL = seller.PhotoURL
			seller.PhotoURL = nil
		} else {
			seller.PhotoURL = req.PhotoURL
		}
	}

	result := &UpdateResult{}

	if photo != nil {
		photoURL, err := s.photos.Upload(ctx, seller.ID, photo.Filename, photo.Content)
		if err != nil {
			logrus.WithField("seller_id", seller.ID).Error("Erro ao enviar nova foto do vendedor: ", err)
			result.PhotoErr = errors.Wrap(err, "erro ao enviar foto do vendedor")
		} else {
			oldPhotoURL = seller.PhotoURL
			seller.PhotoURL = &photoURL
		}
	}

	seller.UpdatedBy = actor.ID
	seller.UpdatedAt = time.Now()

	if err := s.sellerRepo.UpdateSeller(seller); err != nil {
		return nil, err
	}

	// A foto antiga só é removida depois da persistência da nova URL
	if oldPhotoURL != nil && *oldPhotoURL != "" {
		if err := s.photos.Delete(ctx, *oldPhotoURL); err != nil {
			logrus.WithField("seller_id", seller.ID).Warn("Erro ao remover foto antiga do vendedor: ", err)
		}
	}

	s.appendAudit(actor, domain.AuditActionUpdate, seller.ID, fmt.Sprintf("vendedor %q atualizado", seller.Name))

	result.Seller = seller
	return result, nil
}

// DeleteSeller remove o cadastro do vendedor. A foto permanece no storage:
// a remoção de objetos órfãos fica a cargo de rotina de limpeza do bucket.
func (s *Service) DeleteSeller(ctx context.Context, id string, actor domain.Actor) error {
	found, err := s.sellerRepo.DeleteSeller(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSellerNotFound
	}

	s.appendAudit(actor, domain.AuditActionDelete, id, "vendedor removido")

	return nil
}

func (s *Service) GetSeller(id string) (*domain.Seller, error) {
	seller, err := s.sellerRepo.GetSellerByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}

	return seller, nil
}

func (s *Service) ListSellers() ([]*domain.Seller, error) {
	return s.sellerRepo.ListSellers()
}

// appendAudit grava a entrada no histórico. Falha é apenas registrada —
// nunca desfaz a operação principal.
func (s *Service) appendAudit(actor domain.Actor, action, recordID, details string) {
	entry := &domain.AuditLogEntry{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		ActionType: action,
		RecordType: domain.AuditRecordSeller,
		RecordID:   recordID,
		Details:    details,
	}

	if err := s.auditRepo.Append(entry); err != nil {
		logrus.WithField("record_id", recordID).Error("Erro ao gravar histórico de vendedor: ", err)
	}
}
