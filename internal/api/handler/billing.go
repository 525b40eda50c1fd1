package handler

import (
	"net/http"

	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/billing"
	"github.com/Wall-AR/sales-pulse-api/pkg/apiErrors"
	"github.com/Wall-AR/sales-pulse-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListBillingStatements lista os fechamentos mensais
func ListBillingStatements(service billing.BillingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statements, err := service.ListStatements()
		if err != nil {
			logrus.Error("Erro ao listar fechamentos: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar fechamentos", nil)
			return
		}

		respondJSON(w, http.StatusOK, statements)
	}
}

// GetBillingStatement retorna o fechamento de um período
func GetBillingStatement(service billing.BillingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		statement, err := service.GetStatement(period)
		if err != nil {
			handleBillingError(w, err, "Erro ao buscar fechamento")
			return
		}

		respondJSON(w, http.StatusOK, statement)
	}
}

// UpsertBillingStatement cria ou substitui o fechamento de um período
func UpsertBillingStatement(service billing.BillingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertBillingStatement")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpsertBillingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		statement, err := service.UpsertStatement(&req, userClaims.Actor())
		if err != nil {
			handleBillingError(w, err, "Erro ao gravar fechamento")
			return
		}

		respondJSON(w, http.StatusOK, statement)
	}
}

// DeleteBillingStatement remove o fechamento de um período
func DeleteBillingStatement(service billing.BillingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBillingStatement")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		if err := service.DeleteStatement(period, userClaims.Actor()); err != nil {
			handleBillingError(w, err, "Erro ao remover fechamento")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

func handleBillingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, billing.ErrStatementNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Fechamento não encontrado", nil)

	case errors.Is(err, billing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)

	case errors.Is(err, billing.ErrNegativeAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.Error(fallback, ": ", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
