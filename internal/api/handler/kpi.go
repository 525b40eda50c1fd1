package handler

import (
	"net/http"

	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/kpis"
	"github.com/Wall-AR/sales-pulse-api/pkg/apiErrors"
	"github.com/Wall-AR/sales-pulse-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// UpsertKpiSnapshot grava manualmente o snapshot de um período — usado
// principalmente para definir a meta mensal
func UpsertKpiSnapshot(service kpis.KpiManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertKpiSnapshot")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpsertKpiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		snapshot, err := service.UpsertSnapshot(&req, userClaims.Actor())
		if err != nil {
			switch {
			case errors.Is(err, kpis.ErrInvalidPeriod):
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)

			case errors.Is(err, kpis.ErrNegativeValues):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				logrus.Error("Erro ao gravar snapshot de KPIs: ", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar snapshot de KPIs", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, snapshot)
	}
}
