package handler

import (
	"net/http"
	"strings"

	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/selling"
	"github.com/Wall-AR/sales-pulse-api/pkg/apiErrors"
	"github.com/Wall-AR/sales-pulse-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListSales lista as vendas de um período (query param "period", YYYY-MM)
func ListSales(service selling.SaleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Período não informado", nil)
			return
		}

		sales, err := service.ListSalesByPeriod(period)
		if err != nil {
			logrus.Error("Erro ao listar vendas: ", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido, use o formato YYYY-MM", nil)
			return
		}

		respondJSON(w, http.StatusOK, sales)
	}
}

// GetSale retorna uma venda por ID
func GetSale(service selling.SaleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		sale, err := service.GetSale(id)
		if err != nil {
			handleSaleError(w, err, "Erro ao buscar venda")
			return
		}

		respondJSON(w, http.StatusOK, sale)
	}
}

// CreateSale lança uma nova venda
func CreateSale(service selling.SaleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSale")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.CreateSale(&req, userClaims.Actor())
		if err != nil {
			handleSaleError(w, err, "Erro ao lançar venda")
			return
		}

		respondJSON(w, http.StatusCreated, sale)
	}
}

// UpdateSale edita uma venda. O vendedor dono da venda é imutável.
func UpdateSale(service selling.SaleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSale")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		var req domain.UpdateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = id

		sale, err := service.UpdateSale(&req, userClaims.Actor())
		if err != nil {
			handleSaleError(w, err, "Erro ao atualizar venda")
			return
		}

		respondJSON(w, http.StatusOK, sale)
	}
}

// DeleteSale remove uma venda
func DeleteSale(service selling.SaleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSale")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		if err := service.DeleteSale(id, userClaims.Actor()); err != nil {
			handleSaleError(w, err, "Erro ao remover venda")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

func handleSaleError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Venda não encontrada", nil)

	case errors.Is(err, selling.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Vendedor não encontrado", nil)

	case errors.Is(err, selling.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, selling.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case strings.Contains(err.Error(), "data da venda inválida"):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.Error(fallback, ": ", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
