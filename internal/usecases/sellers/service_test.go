package sellers

import (
	"context"
	"strings"
	"testing"

	repomocks "github.com/Wall-AR/sales-pulse-api/infrastructure/repository/mocks"
	storagemocks "github.com/Wall-AR/sales-pulse-api/infrastructure/storage/mocks"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testActor = domain.Actor{ID: "7", Email: "gestor@empresa.com.br"}

func newTestService(ctrl *gomock.Controller) (*Service, *repomocks.MockSellerRepository, *repomocks.MockAuditLogRepository, *storagemocks.MockAvatarStorage) {
	sellerRepo := repomocks.NewMockSellerRepository(ctrl)
	auditRepo := repomocks.NewMockAuditLogRepository(ctrl)
	photos := storagemocks.NewMockAvatarStorage(ctrl)

	service := &Service{
		sellerRepo: sellerRepo,
		auditRepo:  auditRepo,
		photos:     photos,
	}

	return service, sellerRepo, auditRepo, photos
}

func TestService_CreateSeller(t *testing.T) {
	t.Run("Deve criar vendedor com carimbo de auditoria e status padrão ativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, _ := newTestService(ctrl)

		var created *domain.Seller
		sellerRepo.EXPECT().CreateSeller(gomock.Any()).DoAndReturn(func(s *domain.Seller) error {
			created = s
			return nil
		})
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		result, err := service.CreateSeller(context.Background(), &domain.CreateSellerRequest{
			Name:  "Ana Souza",
			Email: "ana@empresa.com.br",
		}, nil, testActor)

		assert.NoError(t, err)
		assert.Nil(t, result.PhotoErr)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.SellerStatusActive, created.Status)
		assert.Equal(t, "7", created.CreatedBy)
		assert.Equal(t, "7", created.UpdatedBy)
		assert.Nil(t, created.PhotoURL)
	})

	t.Run("Nome ou email ausentes devem impedir a criação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		_, err := service.CreateSeller(context.Background(), &domain.CreateSellerRequest{Name: "Ana"}, nil, testActor)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Status desconhecido deve impedir a criação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		_, err := service.CreateSeller(context.Background(), &domain.CreateSellerRequest{
			Name:   "Ana",
			Email:  "ana@empresa.com.br",
			Status: "ferias",
		}, nil, testActor)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Foto enviada só sobe depois do cadastro persistido e tem a URL gravada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, photos := newTestService(ctrl)

		var persisted *domain.Seller
		gomock.InOrder(
			sellerRepo.EXPECT().CreateSeller(gomock.Any()).Return(nil),
			photos.EXPECT().
				Upload(gomock.Any(), gomock.Any(), "perfil.png", gomock.Any()).
				Return("https://cdn.exemplo.com/avatars/abc/perfil.png", nil),
			sellerRepo.EXPECT().UpdateSeller(gomock.Any()).DoAndReturn(func(s *domain.Seller) error {
				persisted = s
				return nil
			}),
		)
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		photo := &PhotoUpload{Filename: "perfil.png", Content: strings.NewReader("png")}
		result, err := service.CreateSeller(context.Background(), &domain.CreateSellerRequest{
			Name:  "Ana",
			Email: "ana@empresa.com.br",
		}, photo, testActor)

		assert.NoError(t, err)
		assert.Nil(t, result.PhotoErr)
		assert.NotNil(t, persisted.PhotoURL)
		assert.Equal(t, "https://cdn.exemplo.com/avatars/abc/perfil.png", *persisted.PhotoURL)
	})

	t.Run("Falha no upload da foto é sucesso parcial: cadastro fica sem foto e PhotoErr volta preenchido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, photos := newTestService(ctrl)

		var created *domain.Seller
		sellerRepo.EXPECT().CreateSeller(gomock.Any()).DoAndReturn(func(s *domain.Seller) error {
			created = s
			return nil
		})
		photos.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", assert.AnError)
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		photo := &PhotoUpload{Filename: "perfil.png", Content: strings.NewReader("png")}
		result, err := service.CreateSeller(context.Background(), &domain.CreateSellerRequest{
			Name:  "Ana",
			Email: "ana@empresa.com.br",
		}, photo, testActor)

		assert.NoError(t, err)
		assert.NotNil(t, result.PhotoErr)
		assert.NotNil(t, created)
		assert.Nil(t, result.Seller.PhotoURL)
	})

	t.Run("Falha ao gravar a URL da foto não desfaz a criação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, photos := newTestService(ctrl)

		sellerRepo.EXPECT().CreateSeller(gomock.Any()).Return(nil)
		photos.EXPECT().
			Upload(gomock.Any(), gomock.Any(), "perfil.png", gomock.Any()).
			Return("https://cdn.exemplo.com/avatars/abc/perfil.png", nil)
		sellerRepo.EXPECT().UpdateSeller(gomock.Any()).Return(assert.AnError)
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		photo := &PhotoUpload{Filename: "perfil.png", Content: strings.NewReader("png")}
		result, err := service.CreateSeller(context.Background(), &domain.CreateSellerRequest{
			Name:  "Ana",
			Email: "ana@empresa.com.br",
		}, photo, testActor)

		assert.NoError(t, err)
		assert.NotNil(t, result.PhotoErr)
		assert.Nil(t, result.Seller.PhotoURL)
	})

	t.Run("Falha ao gravar auditoria não desfaz a criação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, _ := newTestService(ctrl)

		sellerRepo.EXPECT().CreateSeller(gomock.Any()).Return(nil)
		auditRepo.EXPECT().Append(gomock.Any()).Return(assert.AnError)

		result, err := service.CreateSeller(context.Background(), &domain.CreateSellerRequest{
			Name:  "Ana",
			Email: "ana@empresa.com.br",
		}, nil, testActor)

		assert.NoError(t, err)
		assert.NotNil(t, result.Seller)
	})
}

func TestService_UpdateSeller(t *testing.T) {
	existing := func() *domain.Seller {
		url := "https://cdn.exemplo.com/avatars/S1/antiga.png"
		return &domain.Seller{
			ID:       "S1",
			Name:     "Ana Souza",
			Email:    "ana@empresa.com.br",
			Status:   domain.SellerStatusActive,
			PhotoURL: &url,
		}
	}

	t.Run("Campos nulos no payload não alteram o cadastro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, _ := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(existing(), nil)

		newName := "Ana Paula Souza"
		var updated *domain.Seller
		sellerRepo.EXPECT().UpdateSeller(gomock.Any()).DoAndReturn(func(s *domain.Seller) error {
			updated = s
			return nil
		})
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		result, err := service.UpdateSeller(context.Background(), &domain.UpdateSellerRequest{
			ID:   "S1",
			Name: &newName,
		}, nil, testActor)

		assert.NoError(t, err)
		assert.Nil(t, result.PhotoErr)
		assert.Equal(t, "Ana Paula Souza", updated.Name)
		assert.Equal(t, "ana@empresa.com.br", updated.Email)
		assert.Equal(t, "7", updated.UpdatedBy)
	})

	t.Run("Vendedor inexistente deve retornar erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, _, _ := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S9").Return(nil, nil)

		_, err := service.UpdateSeller(context.Background(), &domain.UpdateSellerRequest{ID: "S9"}, nil, testActor)
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("Troca de foto sobe a nova, persiste e só então remove a antiga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, photos := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(existing(), nil)

		gomock.InOrder(
			photos.EXPECT().
				Upload(gomock.Any(), "S1", "nova.png", gomock.Any()).
				Return("https://cdn.exemplo.com/avatars/S1/nova.png", nil),
			sellerRepo.EXPECT().UpdateSeller(gomock.Any()).DoAndReturn(func(s *domain.Seller) error {
				assert.Equal(t, "https://cdn.exemplo.com/avatars/S1/nova.png", *s.PhotoURL)
				return nil
			}),
			photos.EXPECT().
				Delete(gomock.Any(), "https://cdn.exemplo.com/avatars/S1/antiga.png").
				Return(nil),
		)
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		photo := &PhotoUpload{Filename: "nova.png", Content: strings.NewReader("png")}
		result, err := service.UpdateSeller(context.Background(), &domain.UpdateSellerRequest{ID: "S1"}, photo, testActor)

		assert.NoError(t, err)
		assert.Nil(t, result.PhotoErr)
	})

	t.Run("Falha no upload da foto é sucesso parcial: campos persistem e PhotoErr volta preenchido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, photos := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(existing(), nil)

		photos.EXPECT().
			Upload(gomock.Any(), "S1", "nova.png", gomock.Any()).
			Return("", assert.AnError)

		newName := "Ana Paula"
		var updated *domain.Seller
		sellerRepo.EXPECT().UpdateSeller(gomock.Any()).DoAndReturn(func(s *domain.Seller) error {
			updated = s
			return nil
		})
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		photo := &PhotoUpload{Filename: "nova.png", Content: strings.NewReader("png")}
		result, err := service.UpdateSeller(context.Background(), &domain.UpdateSellerRequest{
			ID:   "S1",
			Name: &newName,
		}, photo, testActor)

		assert.NoError(t, err)
		assert.NotNil(t, result.PhotoErr)
		assert.Equal(t, "Ana Paula", updated.Name)
		// A foto antiga permanece gravada e não é removida do storage
		assert.Equal(t, "https://cdn.exemplo.com/avatars/S1/antiga.png", *updated.PhotoURL)
	})

	t.Run("Falha ao remover a foto antiga não afeta o resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, photos := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(existing(), nil)

		photos.EXPECT().
			Upload(gomock.Any(), "S1", "nova.png", gomock.Any()).
			Return("https://cdn.exemplo.com/avatars/S1/nova.png", nil)
		sellerRepo.EXPECT().UpdateSeller(gomock.Any()).Return(nil)
		photos.EXPECT().
			Delete(gomock.Any(), "https://cdn.exemplo.com/avatars/S1/antiga.png").
			Return(assert.AnError)
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		photo := &PhotoUpload{Filename: "nova.png", Content: strings.NewReader("png")}
		result, err := service.UpdateSeller(context.Background(), &domain.UpdateSellerRequest{ID: "S1"}, photo, testActor)

		assert.NoError(t, err)
		assert.Nil(t, result.PhotoErr)
	})

	t.Run("PhotoURL vazia remove a foto do cadastro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, auditRepo, photos := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(existing(), nil)

		var updated *domain.Seller
		sellerRepo.EXPECT().UpdateSeller(gomock.Any()).DoAndReturn(func(s *domain.Seller) error {
			updated = s
			return nil
		})
		photos.EXPECT().
			Delete(gomock.Any(), "https://cdn.exemplo.com/avatars/S1/antiga.png").
			Return(nil)
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		empty := ""
		result, err := service.UpdateSeller(context.Background(), &domain.UpdateSellerRequest{
			ID:       "S1",
			PhotoURL: &empty,
		}, nil, testActor)

		assert.NoError(t, err)
		assert.Nil(t, result.PhotoErr)
		assert.Nil(t, updated.PhotoURL)
	})
}

func TestService_DeleteSeller(t *testing.T) {
	t.Run("Remoção não toca no storage de fotos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Nenhuma expectativa no mock de storage: qualquer chamada falha o teste
		service, sellerRepo, auditRepo, _ := newTestService(ctrl)

		sellerRepo.EXPECT().DeleteSeller("S1").Return(true, nil)
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		assert.NoError(t, service.DeleteSeller(context.Background(), "S1", testActor))
	})

	t.Run("Vendedor inexistente retorna erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, sellerRepo, _, _ := newTestService(ctrl)

		sellerRepo.EXPECT().DeleteSeller("S9").Return(false, nil)

		assert.ErrorIs(t, service.DeleteSeller(context.Background(), "S9", testActor), ErrSellerNotFound)
	})
}

func TestService_GetSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, sellerRepo, _, _ := newTestService(ctrl)

	sellerRepo.EXPECT().GetSellerByID("S1").Return(&domain.Seller{ID: "S1"}, nil)
	sellerRepo.EXPECT().GetSellerByID("S9").Return(nil, nil)

	seller, err := service.GetSeller("S1")
	assert.NoError(t, err)
	assert.Equal(t, "S1", seller.ID)

	_, err = service.GetSeller("S9")
	assert.ErrorIs(t, err, ErrSellerNotFound)
}
