package selling

import (
	"testing"
	"time"

	"github.com/Wall-AR/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testActor = domain.Actor{ID: "3", Email: "supervisor@empresa.com.br"}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockSaleRepository, *mocks.MockSellerRepository, *mocks.MockAuditLogRepository) {
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	sellerRepo := mocks.NewMockSellerRepository(ctrl)
	auditRepo := mocks.NewMockAuditLogRepository(ctrl)

	service := &Service{
		saleRepo:   saleRepo,
		sellerRepo: sellerRepo,
		auditRepo:  auditRepo,
	}

	return service, saleRepo, sellerRepo, auditRepo
}

func TestService_CreateSale(t *testing.T) {
	validRequest := func() *domain.CreateSaleRequest {
		return &domain.CreateSaleRequest{
			SellerID:    "S1",
			Amount:      350.50,
			SaleDate:    "2025-06-15",
			NewCustomer: true,
			OrderNumber: "PED-1001",
		}
	}

	t.Run("Deve registrar a venda com carimbo de auditoria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, saleRepo, sellerRepo, auditRepo := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(&domain.Seller{ID: "S1"}, nil)

		var created *domain.SaleRecord
		saleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.SaleRecord) error {
			created = sale
			return nil
		})
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		sale, err := service.CreateSale(validRequest(), testActor)

		assert.NoError(t, err)
		assert.NotNil(t, sale)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "S1", created.SellerID)
		assert.Equal(t, 350.50, created.Amount)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), created.SaleDate)
		assert.Equal(t, "3", created.CreatedBy)
		assert.Equal(t, "3", created.UpdatedBy)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("Vendedor inexistente deve impedir o lançamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, sellerRepo, _ := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(nil, nil)

		_, err := service.CreateSale(validRequest(), testActor)
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("Valor zerado ou negativo deve ser rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		req := validRequest()
		req.Amount = 0
		_, err := service.CreateSale(req, testActor)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		req.Amount = -10
		_, err = service.CreateSale(req, testActor)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Campos obrigatórios ausentes devem ser rejeitados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		req := validRequest()
		req.SellerID = ""
		_, err := service.CreateSale(req, testActor)
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		req = validRequest()
		req.SaleDate = ""
		_, err = service.CreateSale(req, testActor)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Data em formato inválido deve ser rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		req := validRequest()
		req.SaleDate = "15/06/2025"
		_, err := service.CreateSale(req, testActor)
		assert.Error(t, err)
	})

	t.Run("Falha ao gravar auditoria não desfaz o lançamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, saleRepo, sellerRepo, auditRepo := newTestService(ctrl)

		sellerRepo.EXPECT().GetSellerByID("S1").Return(&domain.Seller{ID: "S1"}, nil)
		saleRepo.EXPECT().CreateSale(gomock.Any()).Return(nil)
		auditRepo.EXPECT().Append(gomock.Any()).Return(assert.AnError)

		sale, err := service.CreateSale(validRequest(), testActor)

		assert.NoError(t, err)
		assert.NotNil(t, sale)
	})
}

func TestService_UpdateSale(t *testing.T) {
	storedAt := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	existing := func() *domain.SaleRecord {
		return &domain.SaleRecord{
			ID:          "V1",
			SellerID:    "S1",
			Amount:      100,
			SaleDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			OrderNumber: "PED-1001",
			CreatedAt:   storedAt,
			UpdatedAt:   storedAt,
		}
	}

	t.Run("Campos nulos no payload não alteram a venda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, saleRepo, _, auditRepo := newTestService(ctrl)

		saleRepo.EXPECT().GetSaleByID("V1").Return(existing(), nil)

		newAmount := 250.0
		var updated *domain.SaleRecord
		saleRepo.EXPECT().UpdateSale(gomock.Any()).DoAndReturn(func(sale *domain.SaleRecord) error {
			updated = sale
			return nil
		})
		auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		sale, err := service.UpdateSale(&domain.UpdateSaleRequest{
			ID:     "V1",
			Amount: &newAmount,
		}, testActor)

		assert.NoError(t, err)
		assert.NotNil(t, sale)
		assert.Equal(t, 250.0, updated.Amount)
		// Demais campos preservados, incluindo o vendedor dono da venda
		assert.Equal(t, "S1", updated.SellerID)
		assert.Equal(t, "PED-1001", updated.OrderNumber)
		assert.Equal(t, "3", updated.UpdatedBy)
		// Toda edição recarimba o updated_at; o created_at nunca muda
		assert.True(t, updated.UpdatedAt.After(storedAt))
		assert.Equal(t, storedAt, updated.CreatedAt)
	})

	t.Run("Venda inexistente retorna erro de não encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, saleRepo, _, _ := newTestService(ctrl)

		saleRepo.EXPECT().GetSaleByID("V9").Return(nil, nil)

		_, err := service.UpdateSale(&domain.UpdateSaleRequest{ID: "V9"}, testActor)
		assert.ErrorIs(t, err, ErrSaleNotFound)
	})

	t.Run("Valor inválido na edição é rejeitado antes de persistir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, saleRepo, _, _ := newTestService(ctrl)

		saleRepo.EXPECT().GetSaleByID("V1").Return(existing(), nil)

		zero := 0.0
		_, err := service.UpdateSale(&domain.UpdateSaleRequest{ID: "V1", Amount: &zero}, testActor)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestService_DeleteSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _, auditRepo := newTestService(ctrl)

	saleRepo.EXPECT().DeleteSale("V1").Return(true, nil)
	auditRepo.EXPECT().Append(gomock.Any()).Return(nil)
	saleRepo.EXPECT().DeleteSale("V9").Return(false, nil)

	assert.NoError(t, service.DeleteSale("V1", testActor))
	assert.ErrorIs(t, service.DeleteSale("V9", testActor), ErrSaleNotFound)
}

func TestService_ListSalesByPeriod(t *testing.T) {
	t.Run("Período válido lista as vendas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, saleRepo, _, _ := newTestService(ctrl)

		saleRepo.EXPECT().ListSalesByPeriod("2025-06").Return([]*domain.SaleRecord{{ID: "V1"}}, nil)

		sales, err := service.ListSalesByPeriod("2025-06")
		assert.NoError(t, err)
		assert.Len(t, sales, 1)
	})

	t.Run("Período em formato inválido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		_, err := service.ListSalesByPeriod("junho-2025")
		assert.Error(t, err)
	})
}
